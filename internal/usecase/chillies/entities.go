package chillies

import "time"

const dateLayout = "2006-01-02"

type CreateTransactionInput struct {
	CustomerID      string  `json:"customer_id"`
	NumberOfBags    int     `json:"number_of_bags"`
	WeightKg        float64 `json:"weight_kg"`
	MarketRate      float64 `json:"market_rate"`
	TransactionDate string  `json:"transaction_date"`
}

type TransactionDTO struct {
	TransactionID   string    `json:"transaction_id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name,omitempty"`
	NumberOfBags    int       `json:"number_of_bags"`
	WeightKg        float64   `json:"weight_kg"`
	MarketRate      float64   `json:"market_rate"`
	TotalEarnings   float64   `json:"total_earnings"`
	Commission      float64   `json:"commission"`
	ServiceCharge   float64   `json:"service_charge"`
	TotalCharges    float64   `json:"total_charges"`
	NetAmount       float64   `json:"net_amount"`
	TransactionDate string    `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}
