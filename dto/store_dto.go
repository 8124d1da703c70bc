package dto

// CreateStoreInput leaves Rating unbound so a missing or zero rating reaches
// the shared range rule and gets the same per-field message as any other
// out-of-range value.
type CreateStoreInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Rating  int    `json:"rating"`
}

// RateStoreInput carries the rating value plus the optional id of the rater.
// Requests without a userId share the anonymous bucket (userId 0).
type RateStoreInput struct {
	Rating int  `json:"rating" binding:"required"`
	UserID uint `json:"userId"`
}

// StoreListItem keeps the legacy snake_case overall_rating field name.
type StoreListItem struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overall_rating"`
}
