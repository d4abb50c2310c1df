package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
)

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]entity.Payment, error)
}
