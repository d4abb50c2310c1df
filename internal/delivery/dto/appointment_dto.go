package dto

import "clinic-portal/internal/domain/entity"

// Request DTOs

// BookAppointmentRequest books for the signed in user. Doctors pick a patient by
// id or describe a new one; patients pick a doctor.
type BookAppointmentRequest struct {
	PatientID           entity.RecordID `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID            entity.RecordID `json:"doctor_id" validate:"omitempty,gt=0"`
	NewPatient          *PatientRequest `json:"new_patient,omitempty"`
	AppointmentDateTime string          `json:"appointment_datetime" validate:"required"`
	Reason              string          `json:"reason" validate:"max=1000"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID       entity.RecordID `json:"appointment_id"`
	PatientID           entity.RecordID `json:"patient_id"`
	DoctorID            entity.RecordID `json:"doctor_id"`
	ClinicID            entity.RecordID `json:"clinic_id"`
	AppointmentDateTime string          `json:"appointment_datetime"`
	Status              string          `json:"status"`
	Reason              string          `json:"reason,omitempty"`
	Priority            string          `json:"priority,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type CancellableAppointmentResponse struct {
	AppointmentID entity.RecordID `json:"appointment_id"`
	Display       string          `json:"display"`
}

type CancellableListResponse struct {
	Appointments []CancellableAppointmentResponse `json:"appointments"`
	Total        int                              `json:"total"`
}

type BookingResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	// CreatedPatient is set when the patient was registered while booking
	CreatedPatient *PatientResponse `json:"created_patient,omitempty"`
}
