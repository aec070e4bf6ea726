package customermock

import (
	"context"

	domain "mandi-ledger-backend/internal/domain/customer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the fields a test needs; unset fields default to not-found
// or a no-op.
type Repo struct {
	CreateFn          func(ctx context.Context, c *domain.Customer) error
	ListFn            func(ctx context.Context) ([]domain.Customer, error)
	GetByCustomerIDFn func(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateFn          func(ctx context.Context, c *domain.Customer) error
	DeleteFn          func(ctx context.Context, customerID string) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Customer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Update(ctx context.Context, c *domain.Customer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, customerID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, customerID)
	}
	return nil
}
