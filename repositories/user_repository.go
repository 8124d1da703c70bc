package repositories

import (
	"errors"
	"store-rating/constants"
	"store-rating/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(user models.User) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() (*[]models.User, error)
	UpdatePassword(email string, check func(storedHash string) error, newHash string) error
	Count() (int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

// UpdatePassword runs the read-verify-write sequence inside one transaction
// so a concurrent change cannot slip between the check and the overwrite.
// check receives the stored hash and its error is returned unchanged.
func (r *UserRepository) UpdatePassword(email string, check func(storedHash string) error, newHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New(constants.ErrUserNotFound)
			}
			return err
		}
		if err := check(user.Password); err != nil {
			return err
		}
		return tx.Model(&user).Update("password", newHash).Error
	})
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
