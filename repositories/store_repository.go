package repositories

import (
	"store-rating/models"

	"gorm.io/gorm"
)

type IStoreRepository interface {
	Create(newStore models.Store) (*models.Store, error)
	FindAll() (*[]models.Store, error)
	Count() (int64, error)
}

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) IStoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(newStore models.Store) (*models.Store, error) {
	result := r.db.Create(&newStore)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newStore, nil
}

func (r *StoreRepository) FindAll() (*[]models.Store, error) {
	var stores []models.Store
	result := r.db.Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}
	return &stores, nil
}

func (r *StoreRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Store{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
