package dto

import "clinic-portal/internal/domain/entity"

// PatientRequest is used for self-registration and for patients created while booking.
// Only the name is required.
type PatientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address     string `json:"address" validate:"omitempty,max=500"`
}

type PatientResponse struct {
	PatientID   entity.RecordID `json:"patient_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	DateOfBirth string          `json:"date_of_birth,omitempty"`
	Gender      string          `json:"gender,omitempty"`
	Address     string          `json:"address,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
