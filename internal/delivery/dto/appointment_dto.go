package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string    `json:"appointment_time" validate:"required,datetime=15:04"`
	AppointmentType string    `json:"appointment_type" validate:"omitempty,oneof=consultation follow_up emergency routine"`
	Reason          string    `json:"reason" validate:"required"`
	Notes           string    `json:"notes" validate:"omitempty"`
}

// CompleteAppointmentRequest optionally attaches visit notes when a doctor
// closes out an appointment.
type CompleteAppointmentRequest struct {
	Notes string `json:"notes" validate:"omitempty"`
}

// SearchAppointmentsQuery mirrors the list-page search form. All filters
// are AND-combined; empty fields are ignored.
type SearchAppointmentsQuery struct {
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	DateFrom    string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo      string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	Doctor          *DoctorResponse  `json:"doctor,omitempty"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	AppointmentDate string           `json:"appointment_date"`
	AppointmentTime string           `json:"appointment_time"`
	AppointmentType string           `json:"appointment_type"`
	Reason          string           `json:"reason"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
