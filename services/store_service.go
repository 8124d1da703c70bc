package services

import (
	"store-rating/dto"
	"store-rating/models"
	"store-rating/repositories"
	"store-rating/validation"
)

type IStoreService interface {
	Create(input dto.CreateStoreInput) (*models.Store, error)
	FindAll() (*[]models.Store, error)
	Rate(storeID uint, input dto.RateStoreInput) (float64, error)
	CountStores() (int64, error)
	CountRatings() (int64, error)
}

type StoreService struct {
	repository       repositories.IStoreRepository
	ratingRepository repositories.IRatingRepository
}

func NewStoreService(repository repositories.IStoreRepository, ratingRepository repositories.IRatingRepository) IStoreService {
	return &StoreService{
		repository:       repository,
		ratingRepository: ratingRepository,
	}
}

func (s *StoreService) Create(input dto.CreateStoreInput) (*models.Store, error) {
	if errs := validation.Store(input.Name, input.Address, input.Rating); errs != nil {
		return nil, errs
	}

	newStore := models.Store{
		Name:          input.Name,
		Address:       input.Address,
		OverallRating: float64(input.Rating),
	}
	return s.repository.Create(newStore)
}

func (s *StoreService) FindAll() (*[]models.Store, error) {
	return s.repository.FindAll()
}

func (s *StoreService) Rate(storeID uint, input dto.RateStoreInput) (float64, error) {
	if msg := validation.Rating(input.Rating); msg != "" {
		return 0, validation.Errors{"rating": msg}
	}

	rating := models.Rating{
		UserID:  input.UserID,
		StoreID: storeID,
		Value:   input.Rating,
	}
	return s.ratingRepository.Save(rating)
}

func (s *StoreService) CountStores() (int64, error) {
	return s.repository.Count()
}

func (s *StoreService) CountRatings() (int64, error) {
	return s.ratingRepository.Count()
}
