package customer

import (
	"context"
	"strings"
	"time"

	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/ledger"
	"mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/recovery"
	"mandi-ledger-backend/internal/domain/validation"
	"mandi-ledger-backend/pkg/id"
)

type Usecase struct {
	repo       customer.Repository
	loans      loan.Repository
	recoveries recovery.Repository
	now        func() time.Time
}

func NewUsecase(repo customer.Repository, loans loan.Repository, recoveries recovery.Repository) *Usecase {
	return &Usecase{repo: repo, loans: loans, recoveries: recoveries, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, in CreateCustomerInput) (*CustomerDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validation.Errorf("name", "is required")
	}

	c := &customer.Customer{
		CustomerID: id.NewID32(),
		Name:       strings.TrimSpace(in.Name),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]CustomerDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, customerID string) (*CustomerDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Update(ctx context.Context, customerID string, in UpdateCustomerInput) (*CustomerDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validation.Errorf("name", "is required")
	}
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = strings.TrimSpace(in.Address)
	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Delete(ctx context.Context, customerID string) error {
	return u.repo.Delete(ctx, customerID)
}

// Balance nets the customer's loans (valued with interest as of now)
// against their recoveries. Full snapshot reload on every call; nothing
// is cached here.
func (u *Usecase) Balance(ctx context.Context, customerID string) (*BalanceDTO, error) {
	c, err := u.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	recoveries, err := u.recoveries.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	balance := ledger.CustomerBalance(customerID, loans, recoveries, u.now())
	return &BalanceDTO{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Balance:    balance,
		Status:     string(ledger.Classify(balance)),
	}, nil
}

func toDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}
