package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type staffRepository struct {
	store domainRepo.TableStore
}

func NewStaffRepository(store domainRepo.TableStore) domainRepo.StaffRepository {
	return &staffRepository{store: store}
}

func (r *staffRepository) FindByType(ctx context.Context, staffType entity.Role) ([]entity.Staff, error) {
	var staff []entity.Staff
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   entity.TableStaff,
		Columns: []string{entity.ColumnStaffID, entity.ColumnName},
		Filters: []domainRepo.Filter{domainRepo.Eq(entity.ColumnStaffType, string(staffType))},
		Order:   entity.ColumnName,
	}, &staff)
	if err != nil {
		return nil, err
	}
	return staff, nil
}
