package recoverymock

import (
	"context"

	domain "mandi-ledger-backend/internal/domain/recovery"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, r *domain.Recovery) error
	ListFn           func(ctx context.Context) ([]domain.Recovery, error)
	ListByCustomerFn func(ctx context.Context, customerID string) ([]domain.Recovery, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Recovery) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Recovery, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Recovery, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
