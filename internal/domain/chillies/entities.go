package chillies

import "time"

// Transaction is one chillies sale brought to the mandi by a customer.
// The five monetary fields are computed from bags/weight/rate once at
// insert time and stored verbatim; they are never recomputed, so a later
// change to the business constants leaves historical rows untouched.
type Transaction struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID   string    `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_chillies_transaction_id" json:"transaction_id"`
	CustomerID      string    `gorm:"column:customer_id;type:char(32);not null;index:idx_chillies_customer" json:"customer_id"`
	NumberOfBags    int       `gorm:"column:number_of_bags;not null" json:"number_of_bags"`
	WeightKg        float64   `gorm:"column:weight_kg;type:decimal(12,2);not null" json:"weight_kg"`
	MarketRate      float64   `gorm:"column:market_rate;type:decimal(12,2);not null" json:"market_rate"`
	TotalEarnings   float64   `gorm:"column:total_earnings;type:decimal(18,2);not null" json:"total_earnings"`
	Commission      float64   `gorm:"column:commission;type:decimal(18,2);not null" json:"commission"`
	ServiceCharge   float64   `gorm:"column:service_charge;type:decimal(18,2);not null" json:"service_charge"`
	TotalCharges    float64   `gorm:"column:total_charges;type:decimal(18,2);not null" json:"total_charges"`
	NetAmount       float64   `gorm:"column:net_amount;type:decimal(18,2);not null" json:"net_amount"`
	TransactionDate time.Time `gorm:"column:transaction_date;type:date;not null" json:"transaction_date"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	CustomerName string `gorm:"->;-:migration" json:"customer_name"`
}

func (Transaction) TableName() string { return "chillies_transactions" }
