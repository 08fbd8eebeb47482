package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// PatientUpdateSelfRequest limits what a patient may change on their own
// profile. The patient number is immutable.
type PatientUpdateSelfRequest struct {
	OldPassword      string `json:"old_password" validate:"omitempty"`
	Password         string `json:"password" validate:"omitempty,min=6"`
	Phone            string `json:"phone" validate:"omitempty,max=15"`
	Address          string `json:"address" validate:"omitempty"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=15"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty"`
	Allergies        string `json:"allergies" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username,omitempty"`
	Email            string    `json:"email,omitempty"`
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	PatientNumber    string    `json:"patient_number"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	DateOfBirth      string    `json:"date_of_birth,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
