package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// ListByUser returns every customer belonging to userID with their vouchers
// preloaded, so the service can derive spend figures in one round trip.
func (r *CustomerRepository) ListByUser(userID uint) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Preload("Vouchers").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&customers).Error
	return customers, err
}

// FindByID returns the customer regardless of owner, vouchers preloaded.
func (r *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Vouchers").First(&customer, id).Error
	return customer, err
}

// Create persists a new customer.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// CountByUser returns how many customers userID owns.
func (r *CustomerRepository) CountByUser(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Customer{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
