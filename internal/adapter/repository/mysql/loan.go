package mysql

import (
	"context"

	loanDomain "mandi-ledger-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// List attaches the customer name via a left join so callers get the
// enriched rows in one round trip.
func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Select("loans.*, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON customers.customer_id = loans.customer_id").
		Order("loans.created_at DESC, loans.id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByCustomer(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
