package models

import "gorm.io/gorm"

// User's Password column holds a bcrypt hash, never the raw value.
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"not null;unique"`
	Password string `gorm:"not null"`
	Address  string
	Role     string `gorm:"not null;default:'user'"`
}
