package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/services"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	user := seedUser(t, db, "dash@example.com")
	customer := seedCustomer(t, db, user.ID, "Asha Stores")

	product := models.Product{UserID: user.ID, Name: "Rice", Price: dec("10.00")}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	now := time.Now()
	for _, v := range []struct {
		no      string
		total   string
		status  string
		daysAgo int
	}{
		{"D-1", "50", models.StatusPaid, 0},
		{"D-2", "30", models.StatusUnpaid, 2},
		{"D-3", "20", models.StatusPartial, 2},
		{"D-4", "99", models.StatusPaid, 30}, // outside the trend window
	} {
		voucher := models.Voucher{
			UserID: user.ID, VoucherNo: v.no, CustomerID: customer.ID,
			Date: now.AddDate(0, 0, -v.daysAgo), Total: dec(v.total),
			PaidAmount: decimal.Zero, Status: v.status, Items: "[]",
		}
		if err := db.Create(&voucher).Error; err != nil {
			t.Fatalf("seed voucher: %v", err)
		}
	}

	svc := services.NewDashboardService(r.users, r.products, r.customers, r.vouchers)
	summary, err := svc.Summary(user.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if summary.UserName != "Trader" {
		t.Errorf("user name = %q, want Trader", summary.UserName)
	}
	if summary.ProductCount != 1 || summary.CustomerCount != 1 || summary.VoucherCount != 4 {
		t.Errorf("counts = %d/%d/%d, want 1/1/4",
			summary.ProductCount, summary.CustomerCount, summary.VoucherCount)
	}

	// Revenue counts every voucher regardless of payment status.
	if !summary.Revenue.Equal(dec("199")) {
		t.Errorf("revenue = %s, want 199", summary.Revenue)
	}
}

func TestDashboardTrendBuckets(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	user := seedUser(t, db, "trend@example.com")
	customer := seedCustomer(t, db, user.ID, "Binod Kirana")

	now := time.Now()
	for i, v := range []struct {
		total   string
		daysAgo int
	}{
		{"10", 0},
		{"15", 0}, // same day, summed into one bucket
		{"20", 3},
		{"99", 10}, // outside the window
	} {
		voucher := models.Voucher{
			UserID: user.ID, VoucherNo: string(rune('A' + i)), CustomerID: customer.ID,
			Date: now.AddDate(0, 0, -v.daysAgo), Total: dec(v.total),
			PaidAmount: decimal.Zero, Status: models.StatusUnpaid, Items: "[]",
		}
		if err := db.Create(&voucher).Error; err != nil {
			t.Fatalf("seed voucher: %v", err)
		}
	}

	svc := services.NewDashboardService(r.users, r.products, r.customers, r.vouchers)
	summary, err := svc.Summary(user.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if len(summary.Trend) != 7 {
		t.Fatalf("trend has %d buckets, want 7", len(summary.Trend))
	}

	last := summary.Trend[6]
	if last.Date != now.Format("2006-01-02") {
		t.Errorf("last bucket = %s, want today %s", last.Date, now.Format("2006-01-02"))
	}
	if !last.Total.Equal(dec("25")) {
		t.Errorf("today's bucket = %s, want 25", last.Total)
	}

	threeAgo := summary.Trend[3]
	if !threeAgo.Total.Equal(dec("20")) {
		t.Errorf("bucket %s = %s, want 20", threeAgo.Date, threeAgo.Total)
	}

	// Empty days report zero, never null.
	for _, point := range summary.Trend {
		if point.Date == "" {
			t.Error("bucket with empty date")
		}
	}
	if !summary.Trend[5].Total.Equal(decimal.Zero) {
		t.Errorf("empty day bucket = %s, want 0", summary.Trend[5].Total)
	}
}
