package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type directoryRepository struct {
	store domainRepo.TableStore
}

func NewDirectoryRepository(store domainRepo.TableStore) domainRepo.DirectoryRepository {
	return &directoryRepository{store: store}
}

func (r *directoryRepository) Exists(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (bool, error) {
	var rows []entity.Row
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   schema.Table,
		Columns: []string{schema.IDColumn},
		Filters: []domainRepo.Filter{domainRepo.Eq(schema.IDColumn, id)},
		Limit:   1,
	}, &rows)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (r *directoryRepository) FindDisplayName(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (string, error) {
	var rows []struct {
		Name string `gorm:"column:name" json:"name"`
	}
	err := r.store.Select(ctx, domainRepo.Query{
		Table:   schema.NameTable,
		Columns: []string{entity.ColumnName},
		Filters: []domainRepo.Filter{domainRepo.Eq(schema.NameKeyColumn, id)},
		Limit:   1,
	}, &rows)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Name, nil
}

func (r *directoryRepository) FindAll(ctx context.Context, schema entity.RoleSchema) ([]entity.Row, error) {
	var rows []entity.Row
	err := r.store.Select(ctx, domainRepo.Query{
		Table: schema.Table,
		Order: schema.IDColumn,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
