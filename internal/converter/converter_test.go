package converter

import (
	"testing"
	"time"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

func TestRoleIDToName(t *testing.T) {
	tests := []struct {
		roleID int
		want   string
	}{
		{entity.RoleIDAdmin, entity.RoleAdmin},
		{entity.RoleIDDoctor, entity.RoleDoctor},
		{entity.RoleIDPatient, entity.RolePatient},
		{0, ""},
		{42, ""},
	}

	for _, tt := range tests {
		if got := RoleIDToName(tt.roleID); got != tt.want {
			t.Errorf("RoleIDToName(%d) = %q, want %q", tt.roleID, got, tt.want)
		}
	}
}

func TestAppointmentToResponseOmitsUnloadedRelations(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		AppointmentDate: time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:30",
		AppointmentType: entity.AppointmentTypeConsultation,
		Reason:          "checkup",
		Status:          entity.AppointmentStatusScheduled,
	}

	resp := AppointmentToResponse(appointment)
	if resp.AppointmentDate != "2026-02-14" {
		t.Errorf("unexpected date formatting: %s", resp.AppointmentDate)
	}
	if resp.Doctor != nil || resp.Patient != nil {
		t.Error("expected nil doctor/patient when relations are not preloaded")
	}
}

func TestAppointmentToResponseIncludesPreloadedRelations(t *testing.T) {
	doctorID := uuid.New()
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		DoctorID:        doctorID,
		AppointmentDate: time.Now(),
		Doctor: entity.DoctorProfile{
			UserID:         doctorID,
			Specialization: entity.SpecializationCardiology,
			User:           entity.User{FullName: "Dr. Smith"},
		},
	}

	resp := AppointmentToResponse(appointment)
	if resp.Doctor == nil {
		t.Fatal("expected doctor to be included")
	}
	if resp.Doctor.FullName != "Dr. Smith" {
		t.Errorf("unexpected doctor name: %s", resp.Doctor.FullName)
	}
	if resp.Doctor.Specialization != entity.SpecializationCardiology {
		t.Errorf("unexpected specialization: %s", resp.Doctor.Specialization)
	}
}

func TestBillToResponseFormatsDueDate(t *testing.T) {
	due := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	bill := &entity.Bill{
		ID:            uuid.New(),
		AppointmentID: uuid.New(),
		DueDate:       &due,
		PaymentStatus: entity.PaymentStatusPending,
	}

	resp := BillToResponse(bill)
	if resp.DueDate != "2026-04-09" {
		t.Errorf("unexpected due date formatting: %s", resp.DueDate)
	}
	if resp.Appointment != nil {
		t.Error("expected nil appointment when not preloaded")
	}
}

func TestPatientProfileToResponseFormatsDateOfBirth(t *testing.T) {
	dob := time.Date(1985, 7, 22, 0, 0, 0, 0, time.UTC)
	profile := &entity.PatientProfile{
		UserID:        uuid.New(),
		PatientNumber: "PAT12345",
		DateOfBirth:   &dob,
		User:          entity.User{FullName: "Jane Roe"},
	}

	resp := PatientProfileToResponse(profile)
	if resp.DateOfBirth != "1985-07-22" {
		t.Errorf("unexpected date of birth formatting: %s", resp.DateOfBirth)
	}
	if resp.PatientNumber != "PAT12345" {
		t.Errorf("unexpected patient number: %s", resp.PatientNumber)
	}
}

func TestNilConvertersReturnNil(t *testing.T) {
	if UserToResponse(nil) != nil {
		t.Error("expected nil response for nil user")
	}
	if DoctorProfileToResponse(nil) != nil {
		t.Error("expected nil response for nil doctor profile")
	}
	if PatientProfileToResponse(nil) != nil {
		t.Error("expected nil response for nil patient profile")
	}
	if AppointmentToResponse(nil) != nil {
		t.Error("expected nil response for nil appointment")
	}
	if BillToResponse(nil) != nil {
		t.Error("expected nil response for nil bill")
	}
}
