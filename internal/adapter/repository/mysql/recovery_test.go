package mysql

import (
	"context"
	"testing"
	"time"

	recoveryDomain "mandi-ledger-backend/internal/domain/recovery"
	"mandi-ledger-backend/pkg/id"
)

func TestRecoveryCreateAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewRecoveryRepository(db)
	ctx := context.Background()

	c := seedCustomer(t, db, "Ravi")
	rec := &recoveryDomain.Recovery{
		RecoveryID:   id.NewID32(),
		CustomerID:   c.CustomerID,
		Amount:       500,
		RecoveryDate: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].Amount != 500 || rows[0].CustomerName != "Ravi" {
		t.Fatalf("row = %+v, want amount 500 enriched with customer name", rows[0])
	}
}
