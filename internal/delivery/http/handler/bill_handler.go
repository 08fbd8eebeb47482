package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillHandler {
	return &BillHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["appointment_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CreateBillRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.CreateBill(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotComplete:
			response.Error(w, http.StatusConflict, "Appointment is not completed yet", nil)
		case usecase.ErrBillExists:
			response.Error(w, http.StatusConflict, "A bill already exists for this appointment", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid amount, use a decimal value", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid due date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create bill")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bill created successfully", bill)
}

func (h *BillHandler) UpdateBillPayment(w http.ResponseWriter, r *http.Request) {
	billID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return
	}

	var req dto.UpdateBillPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.UpdateBillPayment(r.Context(), billID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		case usecase.ErrInvalidPaymentStatus:
			response.Error(w, http.StatusBadRequest, "Unknown payment status", nil)
		case usecase.ErrInvalidPaymentMethod:
			response.Error(w, http.StatusBadRequest, "Unknown payment method", nil)
		default:
			response.InternalServerError(w, "Failed to update bill payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill payment updated successfully", bill)
}

func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingUsecase.ListBills(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	billID, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return
	}

	bill, err := h.billingUsecase.GetBill(r.Context(), billID)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to get bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill retrieved successfully", bill)
}
