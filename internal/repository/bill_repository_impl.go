package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct{}

func NewBillRepository() domainRepo.BillRepository {
	return &billRepository{}
}

func (r *billRepository) Create(db *gorm.DB, bill *entity.Bill) error {
	return db.Create(bill).Error
}

func (r *billRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := db.Preload("Appointment.Doctor.User").Preload("Appointment.Patient.User").
		Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := db.Where("appointment_id = ?", appointmentID).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Bill, error) {
	query := db.Joins("JOIN appointments ON appointments.id = bills.appointment_id").
		Where("appointments.patient_id = ?", patientID)
	return r.findAllOrdered(query)
}

func (r *billRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Bill, error) {
	query := db.Joins("JOIN appointments ON appointments.id = bills.appointment_id").
		Where("appointments.doctor_id = ?", doctorID)
	return r.findAllOrdered(query)
}

func (r *billRepository) FindAll(db *gorm.DB) ([]entity.Bill, error) {
	return r.findAllOrdered(db)
}

func (r *billRepository) findAllOrdered(query *gorm.DB) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := query.
		Preload("Appointment.Doctor.User").Preload("Appointment.Patient.User").
		Order("bills.created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Update(db *gorm.DB, bill *entity.Bill) error {
	return db.Omit("Appointment").Save(bill).Error
}

func (r *billRepository) CountByStatus(db *gorm.DB, status entity.PaymentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Bill{}).Where("payment_status = ?", status).Count(&count).Error
	return count, err
}

func (r *billRepository) FindRecentByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Joins("JOIN appointments ON appointments.id = bills.appointment_id").
		Where("appointments.patient_id = ?", patientID).
		Preload("Appointment.Doctor.User").
		Order("bills.created_at DESC").
		Limit(limit).
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
