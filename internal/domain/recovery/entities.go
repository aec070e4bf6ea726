package recovery

import "time"

// Recovery is a repayment against a customer's outstanding loans. Rows are
// insert-only; there is no update or delete path.
type Recovery struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	RecoveryID   string    `gorm:"column:recovery_id;type:char(32);not null;uniqueIndex:ux_recoveries_recovery_id" json:"recovery_id"`
	CustomerID   string    `gorm:"column:customer_id;type:char(32);not null;index:idx_recoveries_customer" json:"customer_id"`
	Amount       float64   `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	RecoveryDate time.Time `gorm:"column:recovery_date;type:date;not null" json:"recovery_date"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	CustomerName string `gorm:"->;-:migration" json:"customer_name"`
}

func (Recovery) TableName() string { return "recoveries" }
