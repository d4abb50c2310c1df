package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByColumn(ctx context.Context, column string, id entity.RecordID) ([]entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	// UpdateStatus sets the status of one appointment owned by ownerID under
	// ownerColumn. It returns the number of rows that matched.
	UpdateStatus(ctx context.Context, id entity.RecordID, status entity.AppointmentStatus, ownerColumn string, ownerID entity.RecordID) (int64, error)
}
