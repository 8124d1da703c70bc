package models

import "gorm.io/gorm"

// Rating holds one user's rating of one store. A resubmission by the same
// user replaces the existing row rather than adding a second one.
type Rating struct {
	gorm.Model
	UserID  uint `gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	StoreID uint `gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	Value   int  `gorm:"not null"`
}
