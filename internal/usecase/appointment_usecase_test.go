package usecase

import (
	"context"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

func TestMayTransition(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()
	adminID := uuid.New()
	otherID := uuid.New()

	appointment := &entity.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Status:    entity.AppointmentStatusScheduled,
	}

	u := &appointmentUsecase{}

	tests := []struct {
		name   string
		roleID int
		userID uuid.UUID
		target entity.AppointmentStatus
		expect bool
	}{
		{"admin completes any", entity.RoleIDAdmin, adminID, entity.AppointmentStatusCompleted, true},
		{"admin cancels any", entity.RoleIDAdmin, adminID, entity.AppointmentStatusCancelled, true},
		{"doctor completes own", entity.RoleIDDoctor, doctorID, entity.AppointmentStatusCompleted, true},
		{"doctor marks own no-show", entity.RoleIDDoctor, doctorID, entity.AppointmentStatusNoShow, true},
		{"doctor cannot cancel", entity.RoleIDDoctor, doctorID, entity.AppointmentStatusCancelled, false},
		{"doctor cannot touch others", entity.RoleIDDoctor, otherID, entity.AppointmentStatusCompleted, false},
		{"patient cancels own", entity.RoleIDPatient, patientID, entity.AppointmentStatusCancelled, true},
		{"patient cannot complete", entity.RoleIDPatient, patientID, entity.AppointmentStatusCompleted, false},
		{"patient cannot cancel others", entity.RoleIDPatient, otherID, entity.AppointmentStatusCancelled, false},
		{"unknown role denied", 99, adminID, entity.AppointmentStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.mayTransition(tt.roleID, tt.userID, appointment, tt.target); got != tt.expect {
				t.Errorf("mayTransition(%d, %s) = %v, want %v", tt.roleID, tt.target, got, tt.expect)
			}
		})
	}
}

func TestAppointmentVisibleTo(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()

	appointment := &entity.Appointment{DoctorID: doctorID, PatientID: patientID}

	if !appointmentVisibleTo(entity.RoleIDAdmin, uuid.New(), appointment) {
		t.Error("admin should see every appointment")
	}
	if !appointmentVisibleTo(entity.RoleIDDoctor, doctorID, appointment) {
		t.Error("doctor should see own appointment")
	}
	if appointmentVisibleTo(entity.RoleIDDoctor, uuid.New(), appointment) {
		t.Error("doctor should not see other doctors' appointments")
	}
	if !appointmentVisibleTo(entity.RoleIDPatient, patientID, appointment) {
		t.Error("patient should see own appointment")
	}
	if appointmentVisibleTo(entity.RoleIDPatient, uuid.New(), appointment) {
		t.Error("patient should not see other patients' appointments")
	}
	if appointmentVisibleTo(99, doctorID, appointment) {
		t.Error("unknown role should see nothing")
	}
}

func TestSearchQueryToFilter(t *testing.T) {
	if searchQueryToFilter(nil) != nil {
		t.Error("expected nil filter for nil query")
	}

	filter := searchQueryToFilter(&dto.SearchAppointmentsQuery{
		PatientName: "jane",
		DoctorName:  "gregory",
		DateFrom:    "2026-01-01",
		DateTo:      "2026-01-31",
		Status:      "scheduled",
	})
	if filter.DateFrom != "2026-01-01" || filter.DateTo != "2026-01-31" {
		t.Errorf("date range not carried over: %+v", filter)
	}
	if filter.Status != entity.AppointmentStatusScheduled {
		t.Errorf("status not carried over: %s", filter.Status)
	}
	if filter.PatientName != "jane" || filter.DoctorName != "gregory" {
		t.Errorf("name filters not carried over: %+v", filter)
	}
}

func TestBookAppointmentRejectsUnknownType(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())

	u := &appointmentUsecase{}
	_, err := u.BookAppointment(ctx, &dto.BookAppointmentRequest{
		DoctorID:        uuid.New(),
		AppointmentDate: "2026-12-01",
		AppointmentTime: "10:00",
		AppointmentType: "surgery",
	})
	if err != ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestListAppointmentsRejectsUnknownStatusFilter(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDAdmin)

	u := &appointmentUsecase{}
	_, err := u.ListAppointments(ctx, &dto.SearchAppointmentsQuery{Status: "postponed"})
	if err != ErrInvalidStatusFilter {
		t.Errorf("expected ErrInvalidStatusFilter, got %v", err)
	}
}
