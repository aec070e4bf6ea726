package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// List returns every loan, newest first, with CustomerName attached.
	List(ctx context.Context) ([]Loan, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Loan, error)
}
