package models

import "gorm.io/gorm"

// Category groups products for one owner. Deleting a category detaches its
// products (category_id set to NULL); it never deletes them.
type Category struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
}
