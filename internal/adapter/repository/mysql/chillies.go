package mysql

import (
	"context"

	chilliesDomain "mandi-ledger-backend/internal/domain/chillies"

	"gorm.io/gorm"
)

type ChilliesRepository struct{ db *gorm.DB }

func NewChilliesRepository(db *gorm.DB) *ChilliesRepository { return &ChilliesRepository{db: db} }

func (r *ChilliesRepository) Create(ctx context.Context, t *chilliesDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ChilliesRepository) List(ctx context.Context) ([]chilliesDomain.Transaction, error) {
	var out []chilliesDomain.Transaction
	res := r.db.WithContext(ctx).
		Select("chillies_transactions.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.customer_id = chillies_transactions.customer_id").
		Order("chillies_transactions.created_at DESC, chillies_transactions.id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ChilliesRepository) ListByCustomer(ctx context.Context, customerID string) ([]chilliesDomain.Transaction, error) {
	var out []chilliesDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
