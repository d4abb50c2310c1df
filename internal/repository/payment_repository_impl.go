package repository

import (
	"context"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"
)

type paymentRepository struct {
	store domainRepo.TableStore
}

func NewPaymentRepository(store domainRepo.TableStore) domainRepo.PaymentRepository {
	return &paymentRepository{store: store}
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.store.Select(ctx, domainRepo.Query{
		Table: entity.TablePayment,
		Order: "payment_id desc",
	}, &payments)
	if err != nil {
		return nil, err
	}
	return payments, nil
}
