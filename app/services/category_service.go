package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vyapari/app/models"
	"github.com/shashiranjanraj/vyapari/app/repositories"
	"github.com/shashiranjanraj/vyapari/pkg/logger"
)

// CategoryService manages product categories.
type CategoryService struct {
	categories *repositories.CategoryRepository
}

func NewCategoryService(categories *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns the owner's categories, name ascending.
func (s *CategoryService) List(userID uint) ([]models.Category, error) {
	return s.categories.ListByUser(userID)
}

// Create adds a category for the owner.
func (s *CategoryService) Create(userID uint, name string) (models.Category, error) {
	category := models.Category{UserID: userID, Name: name}
	if err := s.categories.Create(&category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// Delete removes one of the owner's categories. Products assigned to it are
// detached, never deleted, in the same transaction.
func (s *CategoryService) Delete(userID, categoryID uint) error {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if category.UserID != userID {
		return ErrForbidden
	}

	if err := s.categories.DeleteAndDetach(&category); err != nil {
		return err
	}

	logger.Info("category: deleted", "category_id", categoryID, "user_id", userID)
	return nil
}
