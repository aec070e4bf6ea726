package mysql

import (
	"context"

	recoveryDomain "mandi-ledger-backend/internal/domain/recovery"

	"gorm.io/gorm"
)

type RecoveryRepository struct{ db *gorm.DB }

func NewRecoveryRepository(db *gorm.DB) *RecoveryRepository { return &RecoveryRepository{db: db} }

func (r *RecoveryRepository) Create(ctx context.Context, rec *recoveryDomain.Recovery) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RecoveryRepository) List(ctx context.Context) ([]recoveryDomain.Recovery, error) {
	var out []recoveryDomain.Recovery
	res := r.db.WithContext(ctx).
		Select("recoveries.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.customer_id = recoveries.customer_id").
		Order("recoveries.created_at DESC, recoveries.id DESC").
		Find(&out)
	return out, res.Error
}

func (r *RecoveryRepository) ListByCustomer(ctx context.Context, customerID string) ([]recoveryDomain.Recovery, error) {
	var out []recoveryDomain.Recovery
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
