package chilliesmock

import (
	"context"

	domain "mandi-ledger-backend/internal/domain/chillies"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, t *domain.Transaction) error
	ListFn           func(ctx context.Context) ([]domain.Transaction, error)
	ListByCustomerFn func(ctx context.Context, customerID string) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
