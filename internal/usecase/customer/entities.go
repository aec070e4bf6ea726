package customer

import "time"

type CreateCustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CustomerDTO struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type BalanceDTO struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	Status     string  `json:"status"`
}
