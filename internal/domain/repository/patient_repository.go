package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, column string, id entity.RecordID) (*entity.Patient, error)
	FindByIDs(ctx context.Context, ids []entity.RecordID) ([]entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
}
