package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest carries the patient self-registration form.
type RegisterPatientRequest struct {
	Username         string `json:"username" validate:"required,min=3,max=150"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	FullName         string `json:"full_name" validate:"required,min=2"`
	Phone            string `json:"phone" validate:"omitempty,max=15"`
	Address          string `json:"address" validate:"omitempty"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Gender           string `json:"gender" validate:"omitempty,oneof=M F O"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=15"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	Allergies        string `json:"allergies" validate:"omitempty"`
}

// RegisterDoctorRequest carries the doctor self-registration form.
// Fee and availability default server-side when omitted.
type RegisterDoctorRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	FullName        string `json:"full_name" validate:"required,min=2"`
	Phone           string `json:"phone" validate:"omitempty,max=15"`
	Specialization  string `json:"specialization" validate:"required,oneof=cardiology dermatology neurology orthopedics pediatrics psychiatry general"`
	LicenseNumber   string `json:"license_number" validate:"omitempty,max=50"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee string `json:"consultation_fee" validate:"omitempty"` // decimal, e.g. "200.00"
	AvailableFrom   string `json:"available_from" validate:"omitempty,datetime=15:04"`
	AvailableTo     string `json:"available_to" validate:"omitempty,datetime=15:04"`
	Bio             string `json:"bio" validate:"omitempty"`
	Qualifications  string `json:"qualifications" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID        `json:"id"`
	Username       string           `json:"username"`
	Email          string           `json:"email"`
	FullName       string           `json:"full_name"`
	Phone          string           `json:"phone,omitempty"`
	Address        string           `json:"address,omitempty"`
	Role           string           `json:"role"`
	DoctorProfile  *DoctorResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
