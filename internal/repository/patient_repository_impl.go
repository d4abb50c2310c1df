package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type patientRepository struct {
	store domainRepo.TableStore
}

func NewPatientRepository(store domainRepo.TableStore) domainRepo.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.store.Insert(ctx, entity.TablePatient, patient)
}

func (r *patientRepository) FindByID(ctx context.Context, column string, id entity.RecordID) (*entity.Patient, error) {
	var patients []entity.Patient
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   entity.TablePatient,
		Filters: []domainRepo.Filter{domainRepo.Eq(column, id)},
		Limit:   1,
	}, &patients)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, nil
	}
	return &patients[0], nil
}

func (r *patientRepository) FindByIDs(ctx context.Context, ids []entity.RecordID) ([]entity.Patient, error) {
	if len(ids) == 0 {
		return []entity.Patient{}, nil
	}
	var patients []entity.Patient
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   entity.TablePatient,
		Filters: []domainRepo.Filter{domainRepo.InIDs(entity.ColumnPatientID, ids)},
		Order:   entity.ColumnPatientID,
	}, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.store.Select(ctx, domainRepo.Query{
		Table: entity.TablePatient,
		Order: entity.ColumnName,
	}, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}
