package recovery

import (
	"context"
	"time"

	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/recovery"
	"mandi-ledger-backend/internal/domain/validation"
	"mandi-ledger-backend/pkg/id"
)

type Usecase struct {
	repo      recovery.Repository
	customers customer.Repository
}

func NewUsecase(repo recovery.Repository, customers customer.Repository) *Usecase {
	return &Usecase{repo: repo, customers: customers}
}

func (u *Usecase) Create(ctx context.Context, in CreateRecoveryInput) (*RecoveryDTO, error) {
	if in.CustomerID == "" {
		return nil, validation.Errorf("customer_id", "is required")
	}
	if in.Amount <= 0 {
		return nil, validation.Errorf("amount", "must be greater than 0")
	}
	recoveryDate, err := time.ParseInLocation(dateLayout, in.RecoveryDate, time.UTC)
	if err != nil {
		return nil, validation.Errorf("recovery_date", "must be a YYYY-MM-DD date")
	}

	c, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	rec := &recovery.Recovery{
		RecoveryID:   id.NewID32(),
		CustomerID:   c.CustomerID,
		Amount:       in.Amount,
		RecoveryDate: recoveryDate,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	rec.CustomerName = c.Name
	return toDTO(rec), nil
}

func (u *Usecase) List(ctx context.Context) ([]RecoveryDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RecoveryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(r *recovery.Recovery) *RecoveryDTO {
	return &RecoveryDTO{
		RecoveryID:   r.RecoveryID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Amount:       r.Amount,
		RecoveryDate: r.RecoveryDate.Format(dateLayout),
		CreatedAt:    r.CreatedAt,
	}
}
