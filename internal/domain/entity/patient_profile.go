package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// BloodGroups lists the accepted blood group values.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// ValidGender reports whether g is one of the accepted gender codes.
func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ValidBloodGroup reports whether g is one of the accepted blood groups.
func ValidBloodGroup(g string) bool {
	for _, v := range BloodGroups {
		if g == v {
			return true
		}
	}
	return false
}

// PatientProfile represents patient-specific profile data.
// PatientNumber is generated at registration and immutable afterwards.
type PatientProfile struct {
	UserID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	PatientNumber    string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_number"`
	BloodGroup       string     `gorm:"type:varchar(3)" json:"blood_group,omitempty"`
	Gender           string     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth      *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(15)" json:"emergency_contact,omitempty"`
	MedicalHistory   string     `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies        string     `gorm:"type:text" json:"allergies,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
