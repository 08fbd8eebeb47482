package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateBillRequest creates the bill for a completed appointment. All money
// fields are decimal strings; total_amount overrides the derived total when
// supplied.
type CreateBillRequest struct {
	TotalAmount         string `json:"total_amount" validate:"omitempty"`
	AdditionalCharges   string `json:"additional_charges" validate:"omitempty"`
	DiscountAmount      string `json:"discount_amount" validate:"omitempty"`
	ChargesDescription  string `json:"charges_description" validate:"omitempty"`
	DiscountDescription string `json:"discount_description" validate:"omitempty"`
	DueDate             string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Notes               string `json:"notes" validate:"omitempty"`
}

type UpdateBillPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid partial overdue cancelled"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card insurance online"`
}

// Response DTOs

type BillResponse struct {
	ID                  uuid.UUID            `json:"id"`
	AppointmentID       uuid.UUID            `json:"appointment_id"`
	Appointment         *AppointmentResponse `json:"appointment,omitempty"`
	TotalAmount         decimal.Decimal      `json:"total_amount"`
	DiscountAmount      decimal.Decimal      `json:"discount_amount"`
	AdditionalCharges   decimal.Decimal      `json:"additional_charges"`
	ChargesDescription  string               `json:"charges_description,omitempty"`
	DiscountDescription string               `json:"discount_description,omitempty"`
	PaymentStatus       string               `json:"payment_status"`
	PaymentMethod       string               `json:"payment_method,omitempty"`
	PaymentDate         *time.Time           `json:"payment_date,omitempty"`
	DueDate             string               `json:"due_date,omitempty"`
	Notes               string               `json:"notes,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
