package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of a bill
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// PaymentMethod represents how a bill was settled
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodInsurance PaymentMethod = "insurance"
	PaymentMethodOnline    PaymentMethod = "online"
)

// DueDateGracePeriod is how long after the appointment a bill falls due
// when no explicit due date is supplied.
const DueDateGracePeriod = 30 * 24 * time.Hour

// Bill represents the billing record for exactly one appointment.
type Bill struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID         uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	DiscountAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	AdditionalCharges     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"additional_charges"`
	ChargesDescription    string          `gorm:"type:text" json:"charges_description,omitempty"`
	DiscountDescription   string          `gorm:"type:text" json:"discount_description,omitempty"`
	PaymentStatus         PaymentStatus   `gorm:"type:varchar(10);not null;default:'pending';index" json:"payment_status"`
	PaymentMethod         PaymentMethod   `gorm:"type:varchar(10)" json:"payment_method,omitempty"`
	PaymentDate           *time.Time      `json:"payment_date,omitempty"`
	DueDate               *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	Notes                 string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Bill) TableName() string {
	return "bills"
}

// ComputeTotal derives the total from the consultation fee, additional
// charges and discount. Idempotent: recomputing with the same inputs yields
// the same amount. ApplyDefaults only calls it when TotalAmount is still
// zero, so an explicitly supplied total is left untouched.
func ComputeTotal(consultationFee, additionalCharges, discount decimal.Decimal) decimal.Decimal {
	return consultationFee.Add(additionalCharges).Sub(discount)
}

// ApplyDefaults fills the derived fields that were not explicitly supplied:
// the total from the fee arithmetic and the due date from the appointment
// date plus the grace period.
func (b *Bill) ApplyDefaults(consultationFee decimal.Decimal, appointmentDate time.Time) {
	if b.TotalAmount.IsZero() {
		b.TotalAmount = ComputeTotal(consultationFee, b.AdditionalCharges, b.DiscountAmount)
	}
	if b.DueDate == nil {
		due := appointmentDate.Add(DueDateGracePeriod)
		b.DueDate = &due
	}
}

// SetPaymentStatus applies a payment status transition. Moving to paid
// stamps PaymentDate once; re-applying paid or moving away from it never
// touches an already-set PaymentDate.
func (b *Bill) SetPaymentStatus(status PaymentStatus, now time.Time) {
	b.PaymentStatus = status
	if status == PaymentStatusPaid && b.PaymentDate == nil {
		b.PaymentDate = &now
	}
}

// IsPaid checks if the bill has been fully settled
func (b *Bill) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// ValidPaymentStatus reports whether s is one of the accepted statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodInsurance, PaymentMethodOnline:
		return true
	}
	return false
}
