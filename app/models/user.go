package models

import "gorm.io/gorm"

// User is the account that owns every other entity. All queries are scoped
// by User.ID; there is no sharing between accounts.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password     string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	ProfileImage string `gorm:"size:512" json:"profile_image,omitempty"`
}
