package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:       appointment.AppointmentID,
		PatientID:           appointment.PatientID,
		DoctorID:            appointment.DoctorID,
		ClinicID:            appointment.ClinicID,
		AppointmentDateTime: appointment.AppointmentDateTime,
		Status:              string(appointment.Status),
		Reason:              appointment.Reason,
		Priority:            string(appointment.Priority),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToCancellable labels a booked appointment for the cancel picker
func AppointmentToCancellable(appointment *entity.Appointment) dto.CancellableAppointmentResponse {
	return dto.CancellableAppointmentResponse{
		AppointmentID: appointment.AppointmentID,
		Display:       appointment.DisplayLabel(),
	}
}
