package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	response := &dto.BillResponse{
		ID:                  bill.ID,
		AppointmentID:       bill.AppointmentID,
		TotalAmount:         bill.TotalAmount,
		DiscountAmount:      bill.DiscountAmount,
		AdditionalCharges:   bill.AdditionalCharges,
		ChargesDescription:  bill.ChargesDescription,
		DiscountDescription: bill.DiscountDescription,
		PaymentStatus:       string(bill.PaymentStatus),
		PaymentMethod:       string(bill.PaymentMethod),
		PaymentDate:         bill.PaymentDate,
		Notes:               bill.Notes,
		CreatedAt:           bill.CreatedAt,
	}

	if bill.DueDate != nil {
		response.DueDate = bill.DueDate.Format("2006-01-02")
	}
	if bill.Appointment.ID != uuid.Nil {
		response.Appointment = AppointmentToResponse(&bill.Appointment)
	}

	return response
}

// BillsToResponses converts a slice of Bill entities to DTOs
func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i, bill := range bills {
		resp := BillToResponse(&bill)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
