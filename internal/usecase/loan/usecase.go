package loan

import (
	"context"
	"time"

	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/validation"
	"mandi-ledger-backend/pkg/id"
)

type Usecase struct {
	repo      loan.Repository
	customers customer.Repository
	now       func() time.Time
}

func NewUsecase(repo loan.Repository, customers customer.Repository) *Usecase {
	return &Usecase{repo: repo, customers: customers, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.CustomerID == "" {
		return nil, validation.Errorf("customer_id", "is required")
	}
	if in.Amount <= 0 {
		return nil, validation.Errorf("amount", "must be greater than 0")
	}
	if in.InterestRate < 0 {
		return nil, validation.Errorf("interest_rate", "must not be negative")
	}
	loanDate, err := time.ParseInLocation(dateLayout, in.LoanDate, time.UTC)
	if err != nil {
		return nil, validation.Errorf("loan_date", "must be a YYYY-MM-DD date")
	}

	c, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	rate := in.InterestRate
	if rate == 0 {
		rate = loan.DefaultInterestRate
	}

	l := &loan.Loan{
		LoanID:       id.NewID32(),
		CustomerID:   c.CustomerID,
		Amount:       in.Amount,
		InterestRate: rate,
		LoanDate:     loanDate,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	l.CustomerName = c.Name
	return u.toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *u.toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) toDTO(l *loan.Loan) *LoanDTO {
	now := u.now()
	return &LoanDTO{
		LoanID:        l.LoanID,
		CustomerID:    l.CustomerID,
		CustomerName:  l.CustomerName,
		Amount:        l.Amount,
		InterestRate:  l.InterestRate,
		LoanDate:      l.LoanDate.Format(dateLayout),
		CreatedAt:     l.CreatedAt,
		CurrentAmount: l.ValueAt(now),
		DaysElapsed:   l.DaysElapsed(now),
		Status:        string(l.StatusAt(now)),
	}
}
