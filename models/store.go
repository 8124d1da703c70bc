package models

import "gorm.io/gorm"

// Store's OverallRating is the mean of its ratings, recomputed on every
// submission. It starts at the value given when the store is added.
type Store struct {
	gorm.Model
	Name          string   `gorm:"not null"`
	Address       string   `gorm:"not null"`
	OverallRating float64  `gorm:"not null"`
	Ratings       []Rating `gorm:"constraint:OnDelete:CASCADE;"`
}
