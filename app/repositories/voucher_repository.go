package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
)

// VoucherRepository handles database operations for Voucher.
type VoucherRepository struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) *VoucherRepository {
	return &VoucherRepository{db: db}
}

// ListByUser returns every voucher belonging to userID, newest first,
// with the customer preloaded.
func (r *VoucherRepository) ListByUser(userID uint) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Preload("Customer").
		Where("user_id = ?", userID).
		Order("date desc, id desc").
		Find(&vouchers).Error
	return vouchers, err
}

// FindByID returns the voucher regardless of owner, customer preloaded.
func (r *VoucherRepository) FindByID(id uint) (models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Preload("Customer").First(&voucher, id).Error
	return voucher, err
}

// Create persists a new voucher. A duplicate voucher number for the same
// owner surfaces as gorm.ErrDuplicatedKey via the composite unique index.
func (r *VoucherRepository) Create(voucher *models.Voucher) error {
	return r.db.Create(voucher).Error
}

// ListSince returns userID's vouchers dated on or after since, oldest first.
func (r *VoucherRepository) ListSince(userID uint, since time.Time) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date asc").
		Find(&vouchers).Error
	return vouchers, err
}

// ListByCustomer returns userID's vouchers for one customer, newest first.
func (r *VoucherRepository) ListByCustomer(userID, customerID uint) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Where("user_id = ? AND customer_id = ?", userID, customerID).
		Order("date desc, id desc").
		Find(&vouchers).Error
	return vouchers, err
}

// CountByUser returns how many vouchers userID owns.
func (r *VoucherRepository) CountByUser(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Voucher{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// AllByUser returns userID's vouchers without preloads, for aggregation.
func (r *VoucherRepository) AllByUser(userID uint) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Where("user_id = ?", userID).Find(&vouchers).Error
	return vouchers, err
}
