package mysql

import (
	"context"
	"testing"
	"time"

	loanDomain "mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/pkg/id"
)

func makeLoan(customerID string, amount float64, loanDate time.Time) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:       id.NewID32(),
		CustomerID:   customerID,
		Amount:       amount,
		InterestRate: 2.0,
		LoanDate:     loanDate,
	}
}

func TestLoanList_JoinsCustomerName(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Ravi Kumar")
	loanDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, makeLoan(c.CustomerID, 1000, loanDate)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].CustomerName != "Ravi Kumar" {
		t.Fatalf("CustomerName = %q, want joined name", rows[0].CustomerName)
	}
	if rows[0].Amount != 1000 {
		t.Fatalf("Amount = %v, want 1000", rows[0].Amount)
	}
}

func TestLoanList_OrphanRowSurvivesJoin(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	// left join: a loan whose customer is gone still lists, with an
	// empty name.
	if err := repo.Create(ctx, makeLoan(id.NewID32(), 500, time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].CustomerName != "" {
		t.Fatalf("CustomerName = %q, want empty for orphan row", rows[0].CustomerName)
	}
}

func TestLoanList_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Ravi")
	first := makeLoan(c.CustomerID, 100, time.Now())
	second := makeLoan(c.CustomerID, 200, time.Now())
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0].LoanID != second.LoanID {
		t.Fatalf("order: got %s first, want the later insert", rows[0].LoanID)
	}
}

func TestLoanListByCustomer_Filters(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	a := seedCustomer(t, db, "A")
	b := seedCustomer(t, db, "B")
	if err := repo.Create(ctx, makeLoan(a.CustomerID, 100, time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeLoan(b.CustomerID, 200, time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.ListByCustomer(ctx, a.CustomerID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if len(rows) != 1 || rows[0].Amount != 100 {
		t.Fatalf("rows = %+v, want only customer A's loan", rows)
	}
}

func TestLoanDateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Ravi")
	loanDate := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, makeLoan(c.CustomerID, 1000, loanDate)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.ListByCustomer(ctx, c.CustomerID)
	if err != nil {
		t.Fatalf("ListByCustomer: %v", err)
	}
	if got := rows[0].LoanDate.UTC().Format("2006-01-02"); got != "2026-02-28" {
		t.Fatalf("LoanDate = %s, want 2026-02-28", got)
	}
}
