// Package ledger holds the pure aggregation functions over the four
// collections. Everything here is a function of its complete input
// snapshot; nothing is cached or carried between calls.
package ledger

import (
	"time"

	"mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/recovery"
)

type BalanceStatus string

const (
	// Customer owes money.
	StatusOutstanding BalanceStatus = "Outstanding"
	// Customer has overpaid.
	StatusCredit BalanceStatus = "Credit"
	// Settled exactly.
	StatusClear BalanceStatus = "Clear"
)

// CustomerBalance nets a customer's loans (valued with interest at now)
// against their recoveries. Loans and recoveries belonging to other
// customers are ignored. A customer with no rows at all balances to
// exactly zero.
func CustomerBalance(customerID string, loans []loan.Loan, recoveries []recovery.Recovery, now time.Time) float64 {
	var balance float64
	for i := range loans {
		if loans[i].CustomerID == customerID {
			balance += loans[i].ValueAt(now)
		}
	}
	for i := range recoveries {
		if recoveries[i].CustomerID == customerID {
			balance -= recoveries[i].Amount
		}
	}
	return balance
}

// Classify maps a balance to its status. The threshold is exact zero,
// matching the recorded business rule; float sums that land near but not
// on zero classify as Outstanding or Credit.
func Classify(balance float64) BalanceStatus {
	switch {
	case balance > 0:
		return StatusOutstanding
	case balance < 0:
		return StatusCredit
	default:
		return StatusClear
	}
}
