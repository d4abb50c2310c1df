package converter

import (
	"strings"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

// PatientRequestToEntity converts a PatientRequest DTO to a Patient entity.
// Blank optional fields stay nil so they are not written.
func PatientRequestToEntity(req *dto.PatientRequest) *entity.Patient {
	if req == nil {
		return nil
	}

	return &entity.Patient{
		Name:        strings.TrimSpace(req.Name),
		Email:       optional(req.Email),
		Phone:       optional(req.Phone),
		DateOfBirth: optional(req.DateOfBirth),
		Gender:      optional(req.Gender),
		Address:     optional(req.Address),
	}
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID:   patient.PatientID,
		Name:        patient.Name,
		Email:       value(patient.Email),
		Phone:       value(patient.Phone),
		DateOfBirth: value(patient.DateOfBirth),
		Gender:      value(patient.Gender),
		Address:     value(patient.Address),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
