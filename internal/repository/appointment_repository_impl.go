package repository

import (
	"errors"
	"time"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").Preload("Bill").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("appointments.patient_id = ?", patientID)
	return r.find(query, filter)
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("appointments.doctor_id = ?", doctorID)
	return r.find(query, filter)
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return r.find(db, filter)
}

// find applies the AND-combined filter and the canonical ordering
// (most recent slot first).
func (r *appointmentRepository) find(query *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	if filter != nil {
		if filter.DateFrom != "" {
			query = query.Where("appointments.appointment_date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("appointments.appointment_date <= ?", filter.DateTo)
		}
		if filter.PatientName != "" {
			query = query.Joins("JOIN patient_profiles ON patient_profiles.user_id = appointments.patient_id").
				Joins("JOIN users AS patient_users ON patient_users.id = patient_profiles.user_id").
				Where("patient_users.full_name ILIKE ?", "%"+filter.PatientName+"%")
		}
		if filter.DoctorName != "" {
			query = query.Joins("JOIN doctor_profiles ON doctor_profiles.user_id = appointments.doctor_id").
				Joins("JOIN users AS doctor_users ON doctor_users.id = doctor_profiles.user_id").
				Where("doctor_users.full_name ILIKE ?", "%"+filter.DoctorName+"%")
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
	}

	err := query.
		Preload("Doctor.User").Preload("Patient.User").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus atomically transitions an appointment out of scheduled.
// The WHERE clause guards the state machine: rows already in a terminal
// status are never touched, so 0 affected rows means the transition lost.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusScheduled).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) UpdateNotes(db *gorm.DB, id uuid.UUID, notes string) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Update("notes", notes).Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindUpcomingByPatient(db *gorm.DB, patientID uuid.UUID, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ? AND appointment_date >= ? AND status = ?", patientID, from, entity.AppointmentStatusScheduled).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND appointment_date = ?", doctorID, date).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcomingByDoctor(db *gorm.DB, doctorID uuid.UUID, after time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND appointment_date > ? AND status = ?", doctorID, after, entity.AppointmentStatusScheduled).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
