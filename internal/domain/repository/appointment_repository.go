package repository

import (
	"time"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// UpdateStatus atomically moves an appointment out of scheduled.
	// Returns affected rows: 0 means the appointment was already terminal.
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	UpdateNotes(db *gorm.DB, id uuid.UUID, notes string) error
	Count(db *gorm.DB) (int64, error)

	// Dashboard reads
	FindUpcomingByPatient(db *gorm.DB, patientID uuid.UUID, from time.Time, limit int) ([]entity.Appointment, error)
	FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error)
}
