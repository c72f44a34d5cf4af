package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/pkg/collection"
)

// CustomerService manages customers and derives their lifetime spend.
type CustomerService struct {
	customers *repositories.CustomerRepository
}

func NewCustomerService(customers *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// TotalSpent sums the totals of PAID vouchers only. Unpaid and partial
// vouchers are pipeline, not realized revenue, and never count here.
func TotalSpent(vouchers []models.Voucher) decimal.Decimal {
	paid := collection.Filter(vouchers, func(v models.Voucher) bool {
		return v.Status == models.StatusPaid
	})
	return collection.Reduce(paid, decimal.Zero, func(sum decimal.Decimal, v models.Voucher) decimal.Decimal {
		return sum.Add(v.Total)
	})
}

// List returns the owner's customers, each enriched with TotalSpent.
func (s *CustomerService) List(userID uint) ([]models.Customer, error) {
	customers, err := s.customers.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	for i := range customers {
		customers[i].TotalSpent = TotalSpent(customers[i].Vouchers)
	}
	return customers, nil
}

// Show returns one of the owner's customers with TotalSpent derived.
func (s *CustomerService) Show(userID, customerID uint) (models.Customer, error) {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, err
	}
	if customer.UserID != userID {
		return models.Customer{}, ErrForbidden
	}

	customer.TotalSpent = TotalSpent(customer.Vouchers)
	return customer, nil
}

// Create adds a customer for the owner.
func (s *CustomerService) Create(userID uint, name, email, phone string) (models.Customer, error) {
	customer := models.Customer{UserID: userID, Name: name, Email: email, Phone: phone}
	if err := s.customers.Create(&customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}
