package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

type PrescriptionRepository interface {
	FindByAppointmentIDs(ctx context.Context, appointmentIDs []entity.RecordID) ([]entity.Prescription, error)
}
