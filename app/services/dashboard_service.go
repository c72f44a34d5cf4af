package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/pkg/cache"
	"github.com/shashiranjanraj/vyapari/pkg/collection"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
)

const (
	trendDays         = 7
	dashboardCacheTTL = 60 * time.Second
)

// DashboardCacheKey is the Redis key for one user's dashboard summary.
func DashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:summary:%d", userID)
}

// TrendPoint is one day of the sales trend. Days without sales carry zero.
type TrendPoint struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// Summary is the owner's dashboard: entity counts, revenue across all
// vouchers regardless of payment status, and the daily sales trend.
type Summary struct {
	UserName      string          `json:"user_name"`
	ProductCount  int64           `json:"product_count"`
	CustomerCount int64           `json:"customer_count"`
	VoucherCount  int64           `json:"voucher_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	Trend         []TrendPoint    `json:"trend"`
}

// DashboardService aggregates the owner's figures, cached in Redis.
type DashboardService struct {
	users     *repositories.UserRepository
	products  *repositories.ProductRepository
	customers *repositories.CustomerRepository
	vouchers  *repositories.VoucherRepository
}

func NewDashboardService(
	users *repositories.UserRepository,
	products *repositories.ProductRepository,
	customers *repositories.CustomerRepository,
	vouchers *repositories.VoucherRepository,
) *DashboardService {
	return &DashboardService{users: users, products: products, customers: customers, vouchers: vouchers}
}

// Summary builds the dashboard for userID, serving from cache when fresh.
func (s *DashboardService) Summary(userID uint) (Summary, error) {
	key := DashboardCacheKey(userID)

	var cached Summary
	if cache.Get(key, &cached) {
		return cached, nil
	}

	summary, err := s.build(userID, time.Now())
	if err != nil {
		return Summary{}, err
	}

	if err := cache.Set(key, summary, dashboardCacheTTL); err != nil {
		logger.Warn("dashboard: cache store failed", "error", err)
	}
	return summary, nil
}

func (s *DashboardService) build(userID uint, now time.Time) (Summary, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return Summary{}, err
	}

	productCount, err := s.products.CountByUser(userID)
	if err != nil {
		return Summary{}, err
	}
	customerCount, err := s.customers.CountByUser(userID)
	if err != nil {
		return Summary{}, err
	}
	voucherCount, err := s.vouchers.CountByUser(userID)
	if err != nil {
		return Summary{}, err
	}

	all, err := s.vouchers.AllByUser(userID)
	if err != nil {
		return Summary{}, err
	}

	// Revenue counts every voucher, paid or not. Customer lifetime spend is
	// the stricter PAID-only figure; the two are deliberately different.
	revenue := collection.Reduce(all, decimal.Zero, func(sum decimal.Decimal, v models.Voucher) decimal.Decimal {
		return sum.Add(v.Total)
	})

	return Summary{
		UserName:      user.Name,
		ProductCount:  productCount,
		CustomerCount: customerCount,
		VoucherCount:  voucherCount,
		Revenue:       revenue,
		Trend:         s.trend(userID, now),
	}, nil
}

// trend buckets the last trendDays days of vouchers by calendar day, ending
// today. Every bucket is present; empty days report zero.
func (s *DashboardService) trend(userID uint, now time.Time) []TrendPoint {
	start := now.AddDate(0, 0, -(trendDays - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	vouchers, err := s.vouchers.ListSince(userID, startDay)
	if err != nil {
		logger.Warn("dashboard: trend query failed", "error", err)
		vouchers = nil
	}

	byDay := collection.GroupBy(vouchers, func(v models.Voucher) string {
		return v.Date.Format("2006-01-02")
	})

	points := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := startDay.AddDate(0, 0, i).Format("2006-01-02")
		total := collection.Reduce(byDay[day], decimal.Zero, func(sum decimal.Decimal, v models.Voucher) decimal.Decimal {
			return sum.Add(v.Total)
		})
		points = append(points, TrendPoint{Date: day, Total: total})
	}
	return points
}
