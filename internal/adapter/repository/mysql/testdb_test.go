package mysql

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	chilliesDomain "mandi-ledger-backend/internal/domain/chillies"
	customerDomain "mandi-ledger-backend/internal/domain/customer"
	loanDomain "mandi-ledger-backend/internal/domain/loan"
	recoveryDomain "mandi-ledger-backend/internal/domain/recovery"
	"mandi-ledger-backend/pkg/id"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// models carry no MySQL-only column types, so the domain structs migrate
// as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&customerDomain.Customer{},
		&loanDomain.Loan{},
		&recoveryDomain.Recovery{},
		&chilliesDomain.Transaction{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *customerDomain.Customer {
	t.Helper()
	c := &customerDomain.Customer{CustomerID: id.NewID32(), Name: name}
	if err := NewCustomerRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}
