package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type appointmentRepository struct {
	store domainRepo.TableStore
}

func NewAppointmentRepository(store domainRepo.TableStore) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.store.Insert(ctx, entity.TableAppointment, appointment)
}

func (r *appointmentRepository) FindByColumn(ctx context.Context, column string, id entity.RecordID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   entity.TableAppointment,
		Filters: []domainRepo.Filter{domainRepo.Eq(column, id)},
		Order:   "appointment_datetime",
	}, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.store.Select(ctx, domainRepo.Query{
		Table: entity.TableAppointment,
		Order: "appointment_datetime",
	}, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus does not filter on the current status, so repeating a
// transition matches the same row again.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id entity.RecordID, status entity.AppointmentStatus, ownerColumn string, ownerID entity.RecordID) (int64, error) {
	return r.store.Update(ctx, entity.TableAppointment,
		map[string]interface{}{entity.ColumnStatus: status},
		domainRepo.Eq(entity.ColumnAppointmentID, id),
		domainRepo.Eq(ownerColumn, ownerID),
	)
}
