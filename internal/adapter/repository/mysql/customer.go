package mysql

import (
	"context"
	"errors"

	customerDomain "mandi-ledger-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) List(ctx context.Context) ([]customerDomain.Customer, error) {
	var out []customerDomain.Customer
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) Update(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&customerDomain.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return customerDomain.ErrNotFound
	}
	return nil
}
