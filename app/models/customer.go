package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is a buyer the owner issues vouchers to. Customers are never
// deleted; vouchers keep pointing at them for the life of the account.
type Customer struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Email  string `gorm:"size:255" json:"email,omitempty"`
	Phone  string `gorm:"size:50" json:"phone,omitempty"`

	Vouchers []Voucher `json:"-"`

	// TotalSpent is the sum of this customer's PAID voucher totals.
	// Derived at read time, never stored.
	TotalSpent decimal.Decimal `gorm:"-" json:"total_spent"`
}
