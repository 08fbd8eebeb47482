package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Specialization constants
const (
	SpecializationCardiology  = "cardiology"
	SpecializationDermatology = "dermatology"
	SpecializationNeurology   = "neurology"
	SpecializationOrthopedics = "orthopedics"
	SpecializationPediatrics  = "pediatrics"
	SpecializationPsychiatry  = "psychiatry"
	SpecializationGeneral     = "general"
)

// Specializations lists the accepted specialization values.
var Specializations = []string{
	SpecializationCardiology,
	SpecializationDermatology,
	SpecializationNeurology,
	SpecializationOrthopedics,
	SpecializationPediatrics,
	SpecializationPsychiatry,
	SpecializationGeneral,
}

// ValidSpecialization reports whether s is one of the accepted specializations.
func ValidSpecialization(s string) bool {
	for _, v := range Specializations {
		if s == v {
			return true
		}
	}
	return false
}

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(20);not null;index" json:"specialization"`
	LicenseNumber   string          `gorm:"type:varchar(50)" json:"license_number,omitempty"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:100.00" json:"consultation_fee"`
	AvailableFrom   string          `gorm:"type:varchar(5);not null;default:'09:00'" json:"available_from"`
	AvailableTo     string          `gorm:"type:varchar(5);not null;default:'17:00'" json:"available_to"`
	IsAvailable     *bool           `gorm:"not null;default:true;index" json:"is_available"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	Qualifications  string          `gorm:"type:text" json:"qualifications,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// AcceptsBookings reports whether the doctor currently takes new appointments.
func (d *DoctorProfile) AcceptsBookings() bool {
	return d.IsAvailable != nil && *d.IsAvailable
}
