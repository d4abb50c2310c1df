package usecase

import (
	"context"
	"strings"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/pkg/monitoring"

	"github.com/sirupsen/logrus"
)

// patientRegistrar inserts patient rows for self-registration and for
// patients created while booking
type patientRegistrar struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	metrics     *monitoring.MetricsCollector
}

// validate runs before any insert so an invalid request writes nothing
func (r *patientRegistrar) validate(req *dto.PatientRequest) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return ErrPatientNameRequired
	}
	return nil
}

// register inserts the patient and returns it with its generated id.
// No patient is returned unless the store handed back an id.
func (r *patientRegistrar) register(ctx context.Context, req *dto.PatientRequest) (*entity.Patient, error) {
	if err := r.validate(req); err != nil {
		return nil, err
	}

	patient := converter.PatientRequestToEntity(req)
	if err := r.patientRepo.Create(ctx, patient); err != nil {
		r.log.Warnf("Failed to create patient: %+v", err)
		return nil, remoteFailure(r.metrics, "", err)
	}
	if patient.PatientID <= 0 {
		r.log.Warnf("Patient insert returned no id for %q", patient.Name)
		return nil, ErrPatientIDNotReturned
	}

	r.log.Infof("Registered patient %d", patient.PatientID)
	return patient, nil
}
