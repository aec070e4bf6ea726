package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	customerDomain "mandi-ledger-backend/internal/domain/customer"
	domain "mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/validation"
	"mandi-ledger-backend/internal/testutil/customermock"
	"mandi-ledger-backend/internal/testutil/loanmock"
)

const custID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func knownCustomer() *customermock.Repo {
	return &customermock.Repo{
		GetByCustomerIDFn: func(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
			if customerID != custID {
				return nil, customerDomain.ErrNotFound
			}
			return &customerDomain.Customer{CustomerID: custID, Name: "Ravi"}, nil
		},
	}
}

func TestCreate_Success(t *testing.T) {
	var stored *domain.Loan
	repo := &loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			if l.CreatedAt.IsZero() {
				l.CreatedAt = time.Now().UTC()
			}
			stored = l
			return nil
		},
	}
	uc := NewUsecase(repo, knownCustomer())

	dto, err := uc.Create(context.Background(), CreateLoanInput{
		CustomerID:   custID,
		Amount:       5000,
		InterestRate: 3.5,
		LoanDate:     "2026-01-15",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if stored == nil {
		t.Fatalf("nothing persisted")
	}
	if len(dto.LoanID) != 32 {
		t.Errorf("LoanID = %q, want 32-char id", dto.LoanID)
	}
	if dto.InterestRate != 3.5 {
		t.Errorf("InterestRate = %v, want 3.5", dto.InterestRate)
	}
	if dto.LoanDate != "2026-01-15" {
		t.Errorf("LoanDate = %q, want 2026-01-15", dto.LoanDate)
	}
	if dto.CustomerName != "Ravi" {
		t.Errorf("CustomerName = %q, want Ravi", dto.CustomerName)
	}
}

func TestCreate_DefaultsInterestRate(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, knownCustomer())

	dto, err := uc.Create(context.Background(), CreateLoanInput{
		CustomerID: custID,
		Amount:     1000,
		LoanDate:   "2026-01-15",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.InterestRate != domain.DefaultInterestRate {
		t.Fatalf("InterestRate = %v, want default %v", dto.InterestRate, domain.DefaultInterestRate)
	}
}

func TestCreate_ValidationFailures(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Create must not reach the repository on invalid input")
			return nil
		},
	}, knownCustomer())

	cases := []struct {
		name  string
		in    CreateLoanInput
		field string
	}{
		{"missing customer", CreateLoanInput{Amount: 100, LoanDate: "2026-01-15"}, "customer_id"},
		{"zero amount", CreateLoanInput{CustomerID: custID, Amount: 0, LoanDate: "2026-01-15"}, "amount"},
		{"negative amount", CreateLoanInput{CustomerID: custID, Amount: -5, LoanDate: "2026-01-15"}, "amount"},
		{"negative rate", CreateLoanInput{CustomerID: custID, Amount: 100, InterestRate: -1, LoanDate: "2026-01-15"}, "interest_rate"},
		{"bad date", CreateLoanInput{CustomerID: custID, Amount: 100, LoanDate: "15/01/2026"}, "loan_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			var ve *validation.Error
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want validation.Error", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("failed field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestCreate_UnknownCustomer(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{}, knownCustomer())

	_, err := uc.Create(context.Background(), CreateLoanInput{
		CustomerID: "ffffffffffffffffffffffffffffffff",
		Amount:     100,
		LoanDate:   "2026-01-15",
	})
	if !errors.Is(err, customerDomain.ErrNotFound) {
		t.Fatalf("err = %v, want customer.ErrNotFound", err)
	}
}

func TestList_ComputesDerivedFields(t *testing.T) {
	loanDate := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := &loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Loan, error) {
			return []domain.Loan{{
				LoanID:       "11111111111111111111111111111111",
				CustomerID:   custID,
				CustomerName: "Ravi",
				Amount:       1000,
				InterestRate: 2.0,
				LoanDate:     loanDate,
			}}, nil
		},
	}
	uc := NewUsecase(repo, knownCustomer())
	uc.now = func() time.Time { return loanDate.AddDate(0, 0, 65) }

	dtos, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("len = %d, want 1", len(dtos))
	}
	got := dtos[0]
	if got.CurrentAmount != 1040 {
		t.Errorf("CurrentAmount = %v, want 1040", got.CurrentAmount)
	}
	if got.DaysElapsed != 65 {
		t.Errorf("DaysElapsed = %d, want 65", got.DaysElapsed)
	}
	if got.Status != string(domain.StatusDueSoon) {
		t.Errorf("Status = %q, want Due Soon", got.Status)
	}
	if got.CustomerName != "Ravi" {
		t.Errorf("CustomerName = %q, want Ravi", got.CustomerName)
	}
}

func TestList_RepoError(t *testing.T) {
	boom := errors.New("db down")
	uc := NewUsecase(&loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Loan, error) { return nil, boom },
	}, knownCustomer())

	if _, err := uc.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped db error", err)
	}
}
