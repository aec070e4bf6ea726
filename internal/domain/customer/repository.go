package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	// List returns every customer, newest first.
	List(ctx context.Context) ([]Customer, error)
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, customerID string) error
}
