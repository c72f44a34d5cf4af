package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment status of a voucher. The caller picks the status; the system never
// reconciles it against paid amount and total.
const (
	StatusUnpaid  = "UNPAID"
	StatusPartial = "PARTIAL"
	StatusPaid    = "PAID"
)

// VoucherItem is one line of a voucher: a snapshot of the product at sale
// time. Items are embedded in the voucher row as a JSON blob, not stored as
// their own table, and are immutable once the voucher exists.
type VoucherItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// Voucher is a sales order / invoice. VoucherNo is caller-supplied and
// unique per owner (composite index; the database arbitrates concurrent
// creates, the application does no pre-check).
type Voucher struct {
	gorm.Model
	UserID      uint            `gorm:"not null;index;uniqueIndex:idx_user_voucher_no" json:"user_id"`
	VoucherNo   string          `gorm:"size:64;not null;uniqueIndex:idx_user_voucher_no" json:"voucher_no"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer       `json:"customer,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	ReceiveDate *time.Time      `json:"receive_date,omitempty"`
	Items       string          `gorm:"type:text;not null" json:"-"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	Status      string          `gorm:"size:16;not null;default:UNPAID" json:"status"`

	// LineItems mirrors Items after DecodeItems; populated on every read.
	LineItems []VoucherItem `gorm:"-" json:"items"`
}

// Balance is the outstanding amount: total minus paid. Negative means
// overpayment and is preserved as-is.
func (v *Voucher) Balance() decimal.Decimal {
	return v.Total.Sub(v.PaidAmount)
}

// EncodeItems serialises items into the persisted blob and mirrors them on
// LineItems.
func (v *Voucher) EncodeItems(items []VoucherItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("voucher: encode items: %w", err)
	}
	v.Items = string(raw)
	v.LineItems = items
	return nil
}

// DecodeItems deserialises the persisted blob into LineItems.
func (v *Voucher) DecodeItems() error {
	if v.Items == "" {
		v.LineItems = nil
		return nil
	}
	if err := json.Unmarshal([]byte(v.Items), &v.LineItems); err != nil {
		return fmt.Errorf("voucher %s: decode items: %w", v.VoucherNo, err)
	}
	return nil
}

// MarshalJSON adds the derived balance field to the default encoding.
func (v Voucher) MarshalJSON() ([]byte, error) {
	type alias Voucher
	return json.Marshal(struct {
		alias
		Balance decimal.Decimal `json:"balance"`
	}{alias(v), v.Balance()})
}
