package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string    `gorm:"column:customer_id;type:char(32);not null;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name       string    `gorm:"column:name;size:255;not null" json:"name"`
	Phone      string    `gorm:"column:phone;size:32" json:"phone"`
	Address    string    `gorm:"column:address;type:text" json:"address"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }
