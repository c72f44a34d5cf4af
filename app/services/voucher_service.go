package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/pkg/cache"
	"github.com/shashiranjanraj/vyapari/pkg/collection"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
	"github.com/shashiranjanraj/vyapari/pkg/metrics"
)

// VoucherService creates and lists sales vouchers.
type VoucherService struct {
	vouchers  *repositories.VoucherRepository
	products  *repositories.ProductRepository
	customers *repositories.CustomerRepository
}

func NewVoucherService(
	vouchers *repositories.VoucherRepository,
	products *repositories.ProductRepository,
	customers *repositories.CustomerRepository,
) *VoucherService {
	return &VoucherService{vouchers: vouchers, products: products, customers: customers}
}

// VoucherItemInput is one requested line: which product, how many.
type VoucherItemInput struct {
	ProductID uint
	Quantity  int
}

// VoucherInput carries validated create fields. Total, when non-nil, is the
// client's claimed order total and must match the server-derived one.
type VoucherInput struct {
	VoucherNo   string
	CustomerID  uint
	Date        time.Time
	ReceiveDate *time.Time
	PaidAmount  decimal.Decimal
	Status      string
	Total       *decimal.Decimal
	Items       []VoucherItemInput
}

// List returns the owner's vouchers, newest first, items deserialized.
func (s *VoucherService) List(userID uint) ([]models.Voucher, error) {
	vouchers, err := s.vouchers.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	for i := range vouchers {
		if err := vouchers[i].DecodeItems(); err != nil {
			return nil, err
		}
	}
	return vouchers, nil
}

// Show returns one of the owner's vouchers.
func (s *VoucherService) Show(userID, voucherID uint) (models.Voucher, error) {
	voucher, err := s.vouchers.FindByID(voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Voucher{}, ErrNotFound
		}
		return models.Voucher{}, err
	}
	if voucher.UserID != userID {
		return models.Voucher{}, ErrForbidden
	}

	if err := voucher.DecodeItems(); err != nil {
		return models.Voucher{}, err
	}
	return voucher, nil
}

// Create builds the cart from the owner's product rows, derives the total,
// and persists the voucher. Lines referencing the same product merge. The
// owner's stock is not touched.
func (s *VoucherService) Create(userID uint, in VoucherInput) (models.Voucher, error) {
	if len(in.Items) == 0 {
		return models.Voucher{}, FieldError("items", "a voucher needs at least one item")
	}

	if err := s.checkCustomer(userID, in.CustomerID); err != nil {
		return models.Voucher{}, err
	}

	ids := collection.Unique(collection.Map(in.Items, func(it VoucherItemInput) uint {
		return it.ProductID
	}))
	products, err := s.products.FindByIDs(userID, ids)
	if err != nil {
		return models.Voucher{}, err
	}
	byID := collection.KeyBy(products, func(p models.Product) uint { return p.ID })

	cart := NewCart()
	for _, item := range in.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return models.Voucher{}, FieldError("items", fmt.Sprintf("product %d does not exist", item.ProductID))
		}
		if err := cart.Add(product, item.Quantity); err != nil {
			return models.Voucher{}, err
		}
	}

	total := cart.Total()
	if in.Total != nil && !in.Total.Equal(total) {
		return models.Voucher{}, FieldError("total",
			fmt.Sprintf("total %s does not match computed total %s", in.Total.StringFixed(2), total.StringFixed(2)))
	}

	status := in.Status
	if status == "" {
		status = models.StatusUnpaid
	}

	voucher := models.Voucher{
		UserID:      userID,
		VoucherNo:   in.VoucherNo,
		CustomerID:  in.CustomerID,
		Date:        in.Date,
		ReceiveDate: in.ReceiveDate,
		Total:       total,
		PaidAmount:  in.PaidAmount,
		Status:      status,
	}
	if err := voucher.EncodeItems(cart.Items()); err != nil {
		return models.Voucher{}, err
	}

	if err := s.vouchers.Create(&voucher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Voucher{}, ErrConflict
		}
		return models.Voucher{}, err
	}

	metrics.VouchersCreated.WithLabelValues(status).Inc()
	if err := cache.Del(DashboardCacheKey(userID)); err != nil {
		logger.Warn("voucher: dashboard cache invalidation failed", "error", err)
	}

	logger.Info("voucher: created",
		"voucher_no", voucher.VoucherNo, "user_id", userID, "total", total.StringFixed(2), "status", status)
	return voucher, nil
}

func (s *VoucherService) checkCustomer(userID, customerID uint) error {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FieldError("customer_id", "customer does not exist")
		}
		return err
	}
	if customer.UserID != userID {
		return FieldError("customer_id", "customer does not exist")
	}
	return nil
}
