package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
)

// ProductService manages the owner's inventory.
type ProductService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductService(products *repositories.ProductRepository, categories *repositories.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// ProductInput carries validated create/update fields.
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	Stock      int
	Image      string
	CategoryID *uint
}

// List returns the owner's products, newest first.
func (s *ProductService) List(userID uint) ([]models.Product, error) {
	return s.products.ListByUser(userID)
}

// Create adds a product to the owner's inventory. A category reference must
// point at one of the owner's own categories.
func (s *ProductService) Create(userID uint, in ProductInput) (models.Product, error) {
	if err := s.checkCategory(userID, in.CategoryID); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		UserID:     userID,
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		Image:      in.Image,
		CategoryID: in.CategoryID,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update modifies one of the owner's products. A missing row is ErrNotFound;
// someone else's row is ErrForbidden.
func (s *ProductService) Update(userID, productID uint, in ProductInput) (models.Product, error) {
	product, err := s.ownedProduct(userID, productID)
	if err != nil {
		return models.Product{}, err
	}

	if err := s.checkCategory(userID, in.CategoryID); err != nil {
		return models.Product{}, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.Image = in.Image
	product.CategoryID = in.CategoryID
	product.Category = nil

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Delete removes one of the owner's products, with the same ownership rules
// as Update.
func (s *ProductService) Delete(userID, productID uint) error {
	product, err := s.ownedProduct(userID, productID)
	if err != nil {
		return err
	}
	return s.products.Delete(&product)
}

func (s *ProductService) ownedProduct(userID, productID uint) (models.Product, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	if product.UserID != userID {
		return models.Product{}, ErrForbidden
	}
	return product, nil
}

func (s *ProductService) checkCategory(userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categories.FindByID(*categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FieldError("category_id", "category does not exist")
		}
		return err
	}
	if category.UserID != userID {
		return FieldError("category_id", "category does not exist")
	}
	return nil
}
