package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateDoctorRequest is the admin-side doctor creation form.
type CreateDoctorRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Phone           string `json:"phone" validate:"omitempty,max=15"`
	Specialization  string `json:"specialization" validate:"required,oneof=cardiology dermatology neurology orthopedics pediatrics psychiatry general"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=50"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	AvailableFrom   string `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string `json:"available_to" validate:"omitempty,datetime=15:04"`
	Bio             string `json:"bio" validate:"omitempty"`
	Qualifications  string `json:"qualifications" validate:"omitempty"`
}

// UpdateDoctorRequest is the admin-side doctor update form. Empty fields
// are left unchanged.
type UpdateDoctorRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	FullName        string `json:"full_name" validate:"omitempty,min=2"`
	Phone           string `json:"phone" validate:"omitempty,max=15"`
	Specialization  string `json:"specialization" validate:"omitempty,oneof=cardiology dermatology neurology orthopedics pediatrics psychiatry general"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=50"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	AvailableFrom   string `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string `json:"available_to" validate:"omitempty,datetime=15:04"`
	IsAvailable     *bool  `json:"is_available"`
	IsActive        *bool  `json:"is_active"`
	Bio             string `json:"bio" validate:"omitempty"`
	Qualifications  string `json:"qualifications" validate:"omitempty"`
}

// DoctorUpdateSelfRequest limits what a doctor may change on their own
// profile.
type DoctorUpdateSelfRequest struct {
	OldPassword     string `json:"old_password" validate:"omitempty"`
	Password        string `json:"password" validate:"omitempty,min=6"`
	Phone           string `json:"phone" validate:"omitempty,max=15"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"`
	AvailableFrom   string `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string `json:"available_to" validate:"omitempty,datetime=15:04"`
	IsAvailable     *bool  `json:"is_available"`
	Bio             string `json:"bio" validate:"omitempty"`
	Qualifications  string `json:"qualifications" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Username        string          `json:"username,omitempty"`
	Email           string          `json:"email,omitempty"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone,omitempty"`
	Specialization  string          `json:"specialization"`
	LicenseNumber   string          `json:"license_number,omitempty"`
	ExperienceYears int             `json:"experience_years"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	AvailableFrom   string          `json:"available_from"`
	AvailableTo     string          `json:"available_to"`
	IsAvailable     *bool           `json:"is_available"`
	Bio             string          `json:"bio,omitempty"`
	Qualifications  string          `json:"qualifications,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
