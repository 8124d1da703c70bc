package repositories

import (
	"errors"
	"store-rating/constants"
	"store-rating/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRatingRepository interface {
	Save(rating models.Rating) (float64, error)
	Count() (int64, error)
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) IRatingRepository {
	return &RatingRepository{db: db}
}

// Save upserts the (user, store) rating row and recomputes the store's
// overall rating as the mean over all of its ratings. Everything happens in
// one transaction, so concurrent submissions for the same store both end up
// reflected in the aggregate. Returns the new overall rating.
func (r *RatingRepository) Save(rating models.Rating) (float64, error) {
	var average float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, "id = ?", rating.StoreID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New(constants.ErrStoreNotFound)
			}
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rating).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Rating{}).
			Where("store_id = ?", rating.StoreID).
			Select("AVG(value)").
			Scan(&average).Error; err != nil {
			return err
		}

		return tx.Model(&models.Store{}).
			Where("id = ?", rating.StoreID).
			Update("overall_rating", average).Error
	})
	if err != nil {
		return 0, err
	}
	return average, nil
}

func (r *RatingRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Rating{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
