package chillies

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	List(ctx context.Context) ([]Transaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Transaction, error)
}
