package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeTotal(t *testing.T) {
	fee := decimal.RequireFromString("150.00")
	additional := decimal.RequireFromString("75.00")
	discount := decimal.RequireFromString("15.00")

	total := ComputeTotal(fee, additional, discount)
	if total.String() != "210" {
		t.Errorf("expected total 210, got %s", total)
	}

	// Recomputing with the same inputs yields the same amount
	again := ComputeTotal(fee, additional, discount)
	if !total.Equal(again) {
		t.Errorf("expected idempotent total, got %s then %s", total, again)
	}
}

func TestApplyDefaults(t *testing.T) {
	appointmentDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	fee := decimal.RequireFromString("100.00")

	bill := &Bill{
		AdditionalCharges: decimal.RequireFromString("50.00"),
		DiscountAmount:    decimal.RequireFromString("10.00"),
	}
	bill.ApplyDefaults(fee, appointmentDate)

	if bill.TotalAmount.String() != "140" {
		t.Errorf("expected derived total 140, got %s", bill.TotalAmount)
	}

	wantDue := appointmentDate.Add(DueDateGracePeriod)
	if bill.DueDate == nil || !bill.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, bill.DueDate)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	appointmentDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	explicitDue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	bill := &Bill{
		TotalAmount: decimal.RequireFromString("500.00"),
		DueDate:     &explicitDue,
	}
	bill.ApplyDefaults(decimal.RequireFromString("100.00"), appointmentDate)

	if bill.TotalAmount.String() != "500" {
		t.Errorf("explicit total overwritten: %s", bill.TotalAmount)
	}
	if !bill.DueDate.Equal(explicitDue) {
		t.Errorf("explicit due date overwritten: %v", bill.DueDate)
	}
}

func TestSetPaymentStatusStampsPaymentDateOnce(t *testing.T) {
	bill := &Bill{PaymentStatus: PaymentStatusPending}

	first := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	bill.SetPaymentStatus(PaymentStatusPaid, first)

	if bill.PaymentDate == nil || !bill.PaymentDate.Equal(first) {
		t.Fatalf("expected payment date %v, got %v", first, bill.PaymentDate)
	}

	// Reverting away from paid keeps the original stamp
	bill.SetPaymentStatus(PaymentStatusPartial, first.Add(time.Hour))
	if !bill.PaymentDate.Equal(first) {
		t.Errorf("payment date changed on revert: %v", bill.PaymentDate)
	}

	// Re-paying does not re-stamp
	bill.SetPaymentStatus(PaymentStatusPaid, first.Add(2*time.Hour))
	if !bill.PaymentDate.Equal(first) {
		t.Errorf("payment date re-stamped: %v", bill.PaymentDate)
	}
}

func TestSetPaymentStatusNonPaidNeverStamps(t *testing.T) {
	bill := &Bill{PaymentStatus: PaymentStatusPending}
	bill.SetPaymentStatus(PaymentStatusOverdue, time.Now())

	if bill.PaymentDate != nil {
		t.Errorf("expected nil payment date, got %v", bill.PaymentDate)
	}
	if bill.IsPaid() {
		t.Error("overdue bill reported as paid")
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusPending, PaymentStatusPaid, PaymentStatusPartial, PaymentStatusOverdue, PaymentStatusCancelled} {
		if !ValidPaymentStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidPaymentStatus("refunded") {
		t.Error("expected refunded to be invalid")
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodInsurance, PaymentMethodOnline} {
		if !ValidPaymentMethod(m) {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if ValidPaymentMethod("check") {
		t.Error("expected check to be invalid")
	}
}
