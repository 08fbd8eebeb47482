package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillRepository interface {
	Create(db *gorm.DB, bill *entity.Bill) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bill, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Bill, error)
	// Scoped listings join through the owning appointment.
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Bill, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Bill, error)
	FindAll(db *gorm.DB) ([]entity.Bill, error)
	Update(db *gorm.DB, bill *entity.Bill) error
	CountByStatus(db *gorm.DB, status entity.PaymentStatus) (int64, error)
	FindRecentByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.Bill, error)
}
