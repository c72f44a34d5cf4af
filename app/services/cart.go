package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vyapari/app/models"
)

// LineTotal computes price × qty with exact decimal arithmetic.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderTotal sums the line totals. An empty cart sums to zero.
func OrderTotal(items []models.VoucherItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	return total
}

// Balance is the outstanding amount: total minus paid. Negative balance is
// an overpayment and is reported as-is.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// Cart assembles voucher lines before a voucher is persisted. Lines snapshot
// the product's name and price at the time of the sale, so later product
// edits never rewrite history.
type Cart struct {
	items []models.VoucherItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of product in the cart. Adding a product already
// in the cart merges into the existing line and recomputes its total.
func (c *Cart) Add(product models.Product, quantity int) error {
	if quantity < 1 {
		return FieldError("quantity", fmt.Sprintf("quantity must be at least 1, got %d", quantity))
	}

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			c.items[i].Total = LineTotal(c.items[i].Price, c.items[i].Quantity)
			return nil
		}
	}

	c.items = append(c.items, models.VoucherItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		Price:     product.Price,
		Total:     LineTotal(product.Price, quantity),
	})
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []models.VoucherItem {
	return c.items
}

// Total returns the sum of all line totals.
func (c *Cart) Total() decimal.Decimal {
	return OrderTotal(c.items)
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}
