package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a stock item in the owner's inventory.
//
// Stock is mutated only through the inventory endpoints; creating a voucher
// does not decrement it.
type Product struct {
	gorm.Model
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	CategoryID *uint           `gorm:"index" json:"category_id"`
	Category   *Category       `json:"category,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"product_name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock      int             `gorm:"not null;default:0" json:"stock"`
	Image      string          `gorm:"size:512" json:"image,omitempty"`
}
