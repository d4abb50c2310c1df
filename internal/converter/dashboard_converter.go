package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func StaffToResponses(staff []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i, s := range staff {
		responses[i] = dto.StaffResponse{StaffID: s.StaffID, Name: s.Name}
	}
	return responses
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		responses[i] = dto.PrescriptionResponse{
			PrescriptionID: p.PrescriptionID,
			AppointmentID:  p.AppointmentID,
			Medication:     p.Medication,
			Dosage:         p.Dosage,
			Instructions:   p.Instructions,
		}
	}
	return responses
}

// PaymentsToListResponse converts payments and sums their amounts.
// Amounts are rendered with two decimal places.
func PaymentsToListResponse(payments []entity.Payment) *dto.PaymentListResponse {
	total := decimal.Zero
	responses := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		total = total.Add(p.Amount)
		responses[i] = dto.PaymentResponse{
			PaymentID:     p.PaymentID,
			AppointmentID: p.AppointmentID,
			Amount:        p.Amount.StringFixed(2),
			Method:        p.Method,
			Status:        p.Status,
			PaidAt:        value(p.PaidAt),
		}
	}

	return &dto.PaymentListResponse{
		Payments:    responses,
		Total:       len(payments),
		TotalAmount: total.StringFixed(2),
	}
}
