package recovery

import "context"

type Repository interface {
	Create(ctx context.Context, r *Recovery) error
	List(ctx context.Context) ([]Recovery, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Recovery, error)
}
