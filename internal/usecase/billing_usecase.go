package usecase

import (
	"context"
	"errors"
	"time"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBillNotFound           = errors.New("bill not found")
	ErrBillExists             = errors.New("a bill already exists for this appointment")
	ErrAppointmentNotComplete = errors.New("appointment is not completed yet")
	ErrInvalidAmount          = errors.New("invalid amount, use a decimal value")
	ErrInvalidPaymentStatus   = errors.New("unknown payment status")
	ErrInvalidPaymentMethod   = errors.New("unknown payment method")
)

type BillingUsecase interface {
	CreateBill(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	UpdateBillPayment(ctx context.Context, billID uuid.UUID, req *dto.UpdateBillPaymentRequest) (*dto.BillResponse, error)
	ListBills(ctx context.Context) (*dto.BillListResponse, error)
	GetBill(ctx context.Context, billID uuid.UUID) (*dto.BillResponse, error)
}

type billingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	billRepo        repository.BillRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billRepo repository.BillRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:              db,
		log:             log,
		billRepo:        billRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// CreateBill creates the bill for a completed appointment.
//
// The total defaults to consultation_fee + additional_charges - discount
// unless explicitly supplied, and the due date to the appointment date plus
// 30 days. The unique index on appointment_id enforces one bill per
// appointment.
func (u *billingUsecase) CreateBill(ctx context.Context, appointmentID uuid.UUID, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Billing authority: the treating doctor or an admin
	if roleID != entity.RoleIDAdmin && appointment.DoctorID != userID {
		return nil, ErrAppointmentNotOwned
	}

	if appointment.Status != entity.AppointmentStatusCompleted {
		return nil, ErrAppointmentNotComplete
	}

	bill := &entity.Bill{
		AppointmentID:       appointmentID,
		ChargesDescription:  req.ChargesDescription,
		DiscountDescription: req.DiscountDescription,
		PaymentStatus:       entity.PaymentStatusPending,
		Notes:               req.Notes,
	}

	if bill.AdditionalCharges, err = parseAmount(req.AdditionalCharges); err != nil {
		return nil, err
	}
	if bill.DiscountAmount, err = parseAmount(req.DiscountAmount); err != nil {
		return nil, err
	}
	if req.TotalAmount != "" {
		if bill.TotalAmount, err = parseAmount(req.TotalAmount); err != nil {
			return nil, err
		}
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		bill.DueDate = &due
	}

	bill.ApplyDefaults(appointment.Doctor.ConsultationFee, appointment.AppointmentDate)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.billRepo.Create(tx, bill); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrBillExists
		}
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionBillCreate, "bill", bill.ID.String(), converter.BillToResponse(bill)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Bill created: id=%s, appointment=%s, total=%s", bill.ID, appointmentID, bill.TotalAmount)
	return converter.BillToResponse(bill), nil
}

// UpdateBillPayment applies a payment status transition. Moving to paid
// stamps the payment date once; moving away from paid keeps it.
func (u *billingUsecase) UpdateBillPayment(ctx context.Context, billID uuid.UUID, req *dto.UpdateBillPaymentRequest) (*dto.BillResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	status := entity.PaymentStatus(req.PaymentStatus)
	if !entity.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}
	method := entity.PaymentMethod(req.PaymentMethod)
	if req.PaymentMethod != "" && !entity.ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	bill, err := u.billRepo.FindByID(u.db.WithContext(ctx), billID)
	if err != nil {
		u.log.Warnf("Failed to find bill %s: %+v", billID, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	if roleID != entity.RoleIDAdmin && bill.Appointment.DoctorID != userID {
		return nil, ErrBillNotFound
	}

	oldStatus := bill.PaymentStatus

	bill.SetPaymentStatus(status, time.Now())
	if req.PaymentMethod != "" {
		bill.PaymentMethod = method
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.billRepo.Update(tx, bill); err != nil {
		u.log.Warnf("Failed to update bill %s: %+v", billID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionBillPaymentUpdate, "bill", billID.String(), string(oldStatus), req.PaymentStatus); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillToResponse(bill), nil
}

// ListBills returns the bills visible to the requester through the owning
// appointment: patients their own, doctors theirs, admins everything.
func (u *billingUsecase) ListBills(ctx context.Context) (*dto.BillListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	var (
		bills []entity.Bill
		err   error
	)
	switch roleID {
	case entity.RoleIDPatient:
		bills, err = u.billRepo.FindByPatientID(u.db.WithContext(ctx), userID)
	case entity.RoleIDDoctor:
		bills, err = u.billRepo.FindByDoctorID(u.db.WithContext(ctx), userID)
	case entity.RoleIDAdmin:
		bills, err = u.billRepo.FindAll(u.db.WithContext(ctx))
	default:
		bills = nil
	}
	if err != nil {
		u.log.Warnf("Failed to list bills for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

// GetBill fetches one bill under the same scope rules as the listing.
func (u *billingUsecase) GetBill(ctx context.Context, billID uuid.UUID) (*dto.BillResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	bill, err := u.billRepo.FindByID(u.db.WithContext(ctx), billID)
	if err != nil {
		u.log.Warnf("Failed to find bill %s: %+v", billID, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	if !appointmentVisibleTo(roleID, userID, &bill.Appointment) {
		return nil, ErrBillNotFound
	}

	return converter.BillToResponse(bill), nil
}

// parseAmount parses an optional decimal string; empty means zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
