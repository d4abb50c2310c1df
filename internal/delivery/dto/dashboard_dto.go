package dto

import "clinic-portal/internal/domain/entity"

type StaffResponse struct {
	StaffID entity.RecordID `json:"staff_id"`
	Name    string          `json:"name"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type PrescriptionResponse struct {
	PrescriptionID entity.RecordID `json:"prescription_id"`
	AppointmentID  entity.RecordID `json:"appointment_id"`
	Medication     string          `json:"medication,omitempty"`
	Dosage         string          `json:"dosage,omitempty"`
	Instructions   string          `json:"instructions,omitempty"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}

type PaymentResponse struct {
	PaymentID     entity.RecordID `json:"payment_id"`
	AppointmentID entity.RecordID `json:"appointment_id"`
	Amount        string          `json:"amount"`
	Method        string          `json:"method,omitempty"`
	Status        string          `json:"status,omitempty"`
	PaidAt        string          `json:"paid_at,omitempty"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
	// TotalAmount sums Amount over Payments
	TotalAmount string `json:"total_amount"`
}

// RecordListResponse lists rows of tables whose columns this service does not own
type RecordListResponse struct {
	Records []entity.Row `json:"records"`
	Total   int          `json:"total"`
}
