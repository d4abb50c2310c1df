package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

// DirectoryRepository answers identity questions against the role tables
type DirectoryRepository interface {
	Exists(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (bool, error)
	// FindDisplayName returns "" with a nil error when no row matches
	FindDisplayName(ctx context.Context, schema entity.RoleSchema, id entity.RecordID) (string, error)
	FindAll(ctx context.Context, schema entity.RoleSchema) ([]entity.Row, error)
}
