package loan

import "time"

const dateLayout = "2006-01-02"

type CreateLoanInput struct {
	CustomerID   string  `json:"customer_id"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	LoanDate     string  `json:"loan_date"`
}

type LoanDTO struct {
	LoanID       string    `json:"loan_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interest_rate"`
	LoanDate     string    `json:"loan_date"`
	CreatedAt    time.Time `json:"created_at"`

	// Derived, recomputed against wall-clock now on every read.
	CurrentAmount float64 `json:"current_amount"`
	DaysElapsed   int     `json:"days_elapsed"`
	Status        string  `json:"status"`
}
