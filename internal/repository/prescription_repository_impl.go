package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type prescriptionRepository struct {
	store domainRepo.TableStore
}

func NewPrescriptionRepository(store domainRepo.TableStore) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{store: store}
}

func (r *prescriptionRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []entity.RecordID) ([]entity.Prescription, error) {
	if len(appointmentIDs) == 0 {
		return []entity.Prescription{}, nil
	}
	var prescriptions []entity.Prescription
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   entity.TablePrescription,
		Filters: []domainRepo.Filter{domainRepo.InIDs(entity.ColumnAppointmentID, appointmentIDs)},
		Order:   entity.ColumnAppointmentID,
	}, &prescriptions)
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
