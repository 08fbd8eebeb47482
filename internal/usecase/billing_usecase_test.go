package usecase

import (
	"context"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("")
	if err != nil {
		t.Fatalf("unexpected error for empty amount: %v", err)
	}
	if !amount.IsZero() {
		t.Errorf("expected zero for empty amount, got %s", amount)
	}

	amount, err = parseAmount("19.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount.String() != "19.99" {
		t.Errorf("expected 19.99, got %s", amount)
	}

	if _, err := parseAmount("abc"); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := parseAmount("-5.00"); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount for negative amount, got %v", err)
	}
}

func TestUpdateBillPaymentRejectsUnknownValues(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.RoleIDKey, entity.RoleIDAdmin)

	u := &billingUsecase{}

	_, err := u.UpdateBillPayment(ctx, uuid.New(), &dto.UpdateBillPaymentRequest{PaymentStatus: "settled"})
	if err != ErrInvalidPaymentStatus {
		t.Errorf("expected ErrInvalidPaymentStatus, got %v", err)
	}

	_, err = u.UpdateBillPayment(ctx, uuid.New(), &dto.UpdateBillPaymentRequest{
		PaymentStatus: "paid",
		PaymentMethod: "crypto",
	})
	if err != ErrInvalidPaymentMethod {
		t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}
