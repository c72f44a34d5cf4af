package seeders

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/pkg/auth"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo creates a demo account with a small shop: two categories, three
// products, two customers and three vouchers in mixed payment states.
// Running it twice is a no-op.
func SeedDemo(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", "demo@vyapari.local").First(&existing).Error; err == nil {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	user := models.User{Name: "Demo Trader", Email: "demo@vyapari.local", Password: hash}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	grocery := models.Category{UserID: user.ID, Name: "Grocery"}
	stationery := models.Category{UserID: user.ID, Name: "Stationery"}
	if err := db.Create(&grocery).Error; err != nil {
		return err
	}
	if err := db.Create(&stationery).Error; err != nil {
		return err
	}

	products := []models.Product{
		{UserID: user.ID, CategoryID: &grocery.ID, Name: "Rice 5kg", Price: decimal.RequireFromString("12.50"), Stock: 40},
		{UserID: user.ID, CategoryID: &grocery.ID, Name: "Cooking Oil 1L", Price: decimal.RequireFromString("4.25"), Stock: 60},
		{UserID: user.ID, CategoryID: &stationery.ID, Name: "Notebook A5", Price: decimal.RequireFromString("1.80"), Stock: 120},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{UserID: user.ID, Name: "Asha Stores", Email: "asha@example.com", Phone: "9800000001"},
		{UserID: user.ID, Name: "Binod Kirana", Phone: "9800000002"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	now := time.Now()
	vouchers := []struct {
		no       string
		customer models.Customer
		daysAgo  int
		items    []models.VoucherItem
		paid     string
		status   string
	}{
		{
			no: "INV-001", customer: customers[0], daysAgo: 5,
			items: []models.VoucherItem{line(products[0], 2), line(products[1], 1)},
			paid:  "29.25", status: models.StatusPaid,
		},
		{
			no: "INV-002", customer: customers[1], daysAgo: 2,
			items: []models.VoucherItem{line(products[2], 10)},
			paid:  "10.00", status: models.StatusPartial,
		},
		{
			no: "INV-003", customer: customers[0], daysAgo: 0,
			items: []models.VoucherItem{line(products[1], 3)},
			paid:  "0", status: models.StatusUnpaid,
		},
	}

	for _, v := range vouchers {
		total := decimal.Zero
		for _, item := range v.items {
			total = total.Add(item.Total)
		}

		voucher := models.Voucher{
			UserID:     user.ID,
			VoucherNo:  v.no,
			CustomerID: v.customer.ID,
			Date:       now.AddDate(0, 0, -v.daysAgo),
			Total:      total,
			PaidAmount: decimal.RequireFromString(v.paid),
			Status:     v.status,
		}
		if err := voucher.EncodeItems(v.items); err != nil {
			return err
		}
		if err := db.Create(&voucher).Error; err != nil {
			return err
		}
	}

	return nil
}

func line(p models.Product, qty int) models.VoucherItem {
	return models.VoucherItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  qty,
		Price:     p.Price,
		Total:     p.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
}
