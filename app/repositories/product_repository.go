package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListByUser returns every product belonging to userID, newest first,
// with the category preloaded.
func (r *ProductRepository) ListByUser(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&products).Error
	return products, err
}

// FindByID returns the product regardless of owner. Ownership is the
// service's call: it distinguishes a missing row from someone else's row.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, id).Error
	return product, err
}

// FindByIDs returns userID's products among ids. Rows owned by other users
// are silently absent from the result.
func (r *ProductRepository) FindByIDs(userID uint, ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&products).Error
	return products, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product.
func (r *ProductRepository) Delete(product *models.Product) error {
	return r.db.Delete(product).Error
}

// CountByUser returns how many products userID owns.
func (r *ProductRepository) CountByUser(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Product{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
