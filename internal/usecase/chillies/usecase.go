package chillies

import (
	"context"
	"time"

	"mandi-ledger-backend/internal/domain/chillies"
	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/validation"
	"mandi-ledger-backend/pkg/id"
)

type Usecase struct {
	repo      chillies.Repository
	customers customer.Repository
}

func NewUsecase(repo chillies.Repository, customers customer.Repository) *Usecase {
	return &Usecase{repo: repo, customers: customers}
}

// Create validates the base fields, settles the transaction once, and
// stores the derived amounts verbatim. They are never recomputed after
// this point.
func (u *Usecase) Create(ctx context.Context, in CreateTransactionInput) (*TransactionDTO, error) {
	if in.CustomerID == "" {
		return nil, validation.Errorf("customer_id", "is required")
	}
	if in.NumberOfBags <= 0 {
		return nil, validation.Errorf("number_of_bags", "must be greater than 0")
	}
	if in.WeightKg <= 0 {
		return nil, validation.Errorf("weight_kg", "must be greater than 0")
	}
	if in.MarketRate <= 0 {
		return nil, validation.Errorf("market_rate", "must be greater than 0")
	}
	txDate, err := time.ParseInLocation(dateLayout, in.TransactionDate, time.UTC)
	if err != nil {
		return nil, validation.Errorf("transaction_date", "must be a YYYY-MM-DD date")
	}

	c, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	s := chillies.Settle(in.NumberOfBags, in.WeightKg, in.MarketRate)
	t := &chillies.Transaction{
		TransactionID:   id.NewID32(),
		CustomerID:      c.CustomerID,
		NumberOfBags:    in.NumberOfBags,
		WeightKg:        in.WeightKg,
		MarketRate:      in.MarketRate,
		TotalEarnings:   s.TotalEarnings,
		Commission:      s.Commission,
		ServiceCharge:   s.ServiceCharge,
		TotalCharges:    s.TotalCharges,
		NetAmount:       s.NetAmount,
		TransactionDate: txDate,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	t.CustomerName = c.Name
	return toDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]TransactionDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(t *chillies.Transaction) *TransactionDTO {
	return &TransactionDTO{
		TransactionID:   t.TransactionID,
		CustomerID:      t.CustomerID,
		CustomerName:    t.CustomerName,
		NumberOfBags:    t.NumberOfBags,
		WeightKg:        t.WeightKg,
		MarketRate:      t.MarketRate,
		TotalEarnings:   t.TotalEarnings,
		Commission:      t.Commission,
		ServiceCharge:   t.ServiceCharge,
		TotalCharges:    t.TotalCharges,
		NetAmount:       t.NetAmount,
		TransactionDate: t.TransactionDate.Format(dateLayout),
		CreatedAt:       t.CreatedAt,
	}
}
