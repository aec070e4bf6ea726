package loanmock

import (
	"context"

	domain "mandi-ledger-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	ListFn           func(ctx context.Context) ([]domain.Loan, error)
	ListByCustomerFn func(ctx context.Context, customerID string) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
