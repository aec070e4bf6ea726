package recovery

import "time"

const dateLayout = "2006-01-02"

type CreateRecoveryInput struct {
	CustomerID   string  `json:"customer_id"`
	Amount       float64 `json:"amount"`
	RecoveryDate string  `json:"recovery_date"`
}

type RecoveryDTO struct {
	RecoveryID   string    `json:"recovery_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Amount       float64   `json:"amount"`
	RecoveryDate string    `json:"recovery_date"`
	CreatedAt    time.Time `json:"created_at"`
}
