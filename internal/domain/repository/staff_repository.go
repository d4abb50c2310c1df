package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

type StaffRepository interface {
	FindByType(ctx context.Context, staffType entity.Role) ([]entity.Staff, error)
}
