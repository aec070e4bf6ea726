package dashboard

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mandi-ledger-backend/internal/domain/chillies"
	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/ledger"
	"mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/recovery"
)

const statsKey = "mandi:dashboard:stats"

type Usecase struct {
	customers    customer.Repository
	loans        loan.Repository
	recoveries   recovery.Repository
	transactions chillies.Repository

	// Optional short-TTL cache for the computed stats. Nil disables
	// caching; Stats then always recomputes from a fresh snapshot.
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func NewUsecase(
	customers customer.Repository,
	loans loan.Repository,
	recoveries recovery.Repository,
	transactions chillies.Repository,
	rdb *redis.Client,
	ttl time.Duration,
) *Usecase {
	return &Usecase{
		customers:    customers,
		loans:        loans,
		recoveries:   recoveries,
		transactions: transactions,
		rdb:          rdb,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Stats loads all four collections and reduces them to the dashboard
// figures. A cached copy is served when present; cache errors degrade to
// a plain recompute, never to a request failure.
func (u *Usecase) Stats(ctx context.Context) (*ledger.Stats, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, statsKey).Bytes(); err == nil {
			var cached ledger.Stats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	recoveries, err := u.recoveries.List(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := u.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	s := ledger.ComputeStats(customers, loans, recoveries, transactions, u.now())

	if u.rdb != nil {
		if raw, err := json.Marshal(&s); err == nil {
			if err := u.rdb.Set(ctx, statsKey, raw, u.ttl).Err(); err != nil {
				log.Printf("dashboard: cache set failed: %v", err)
			}
		}
	}
	return &s, nil
}

// Invalidate drops the cached stats. Called after every successful
// mutation so the next dashboard load recomputes from fresh rows.
func (u *Usecase) Invalidate(ctx context.Context) {
	if u.rdb == nil {
		return
	}
	if err := u.rdb.Del(ctx, statsKey).Err(); err != nil {
		log.Printf("dashboard: cache invalidate failed: %v", err)
	}
}
