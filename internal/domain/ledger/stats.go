package ledger

import (
	"time"

	"mandi-ledger-backend/internal/domain/chillies"
	"mandi-ledger-backend/internal/domain/customer"
	"mandi-ledger-backend/internal/domain/loan"
	"mandi-ledger-backend/internal/domain/recovery"
)

type Stats struct {
	TotalCustomers        int                `json:"total_customers"`
	TotalOutstandingLoans float64            `json:"total_outstanding_loans"`
	TotalCommission       float64            `json:"total_commission"`
	TotalServiceCharges   float64            `json:"total_service_charges"`
	TotalChilliesTradedKg float64            `json:"total_chillies_traded_kg"`
	CustomerBalances      map[string]float64 `json:"customer_balances"`
}

// ComputeStats reduces the four full collections into the dashboard
// figures. TotalOutstandingLoans sums only the positive per-customer
// balances: a customer in credit contributes zero rather than offsetting
// what other customers owe, so total receivables are never understated.
// Loans or recoveries referencing an unknown customer are excluded from
// the balance map.
func ComputeStats(
	customers []customer.Customer,
	loans []loan.Loan,
	recoveries []recovery.Recovery,
	transactions []chillies.Transaction,
	now time.Time,
) Stats {
	s := Stats{
		TotalCustomers:   len(customers),
		CustomerBalances: make(map[string]float64, len(customers)),
	}

	for i := range transactions {
		s.TotalCommission += transactions[i].Commission
		s.TotalServiceCharges += transactions[i].ServiceCharge
		s.TotalChilliesTradedKg += transactions[i].WeightKg
	}

	for i := range customers {
		s.CustomerBalances[customers[i].CustomerID] = 0
	}
	for i := range loans {
		if _, ok := s.CustomerBalances[loans[i].CustomerID]; ok {
			s.CustomerBalances[loans[i].CustomerID] += loans[i].ValueAt(now)
		}
	}
	for i := range recoveries {
		if _, ok := s.CustomerBalances[recoveries[i].CustomerID]; ok {
			s.CustomerBalances[recoveries[i].CustomerID] -= recoveries[i].Amount
		}
	}
	for _, b := range s.CustomerBalances {
		if b > 0 {
			s.TotalOutstandingLoans += b
		}
	}
	return s
}
