package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

// DefaultInterestRate applies when a loan is created without an explicit
// rate: 2% per 30-day period.
const DefaultInterestRate = 2.0

type Status string

const (
	StatusActive  Status = "Active"
	StatusDueSoon Status = "Due Soon"
	StatusOverdue Status = "Overdue"
)

type Loan struct {
	ID         uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string  `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID string  `gorm:"column:customer_id;type:char(32);not null;index:idx_loans_customer" json:"customer_id"`
	Amount     float64 `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	// Percent per 30-day period, simple (non-compounding) interest.
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(6,2);not null" json:"interest_rate"`
	LoanDate     time.Time `gorm:"column:loan_date;type:date;not null" json:"loan_date"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Filled by the repository's customer join; not a table column.
	CustomerName string `gorm:"->;-:migration" json:"customer_name"`
}

func (Loan) TableName() string { return "loans" }
