package services

import (
	"errors"
	"store-rating/constants"
	"store-rating/dto"
	"store-rating/models"
	"store-rating/repositories"
	"store-rating/validation"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(input dto.RegisterInput) (uint, error)
	Login(email string, password string) (*models.User, error)
	UpdatePassword(email string, oldPassword string, newPassword string) error
	FindAllUsers() (*[]dto.UserListItem, error)
	CountUsers() (int64, error)
}

type AuthService struct {
	repository repositories.IUserRepository
}

func NewAuthService(repository repositories.IUserRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Register(input dto.RegisterInput) (uint, error) {
	if errs := validation.Registration(input.Name, input.Email, input.Address, input.Password, input.Role); errs != nil {
		return 0, errs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Address:  input.Address,
		Role:     input.Role,
	}
	created, err := s.repository.Create(user)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// Login returns the same invalid-credentials error for an unknown email and
// a wrong password, so the response never reveals whether the account exists.
func (s *AuthService) Login(email string, password string) (*models.User, error) {
	foundUser, err := s.repository.FindByEmail(email)
	if err != nil {
		if err.Error() == constants.ErrUserNotFound {
			return nil, errors.New(constants.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, errors.New(constants.ErrInvalidCredentials)
	}

	return foundUser, nil
}

// UpdatePassword is a self-service action scoped to a known email, so unlike
// login it reports an unknown account as not found.
func (s *AuthService) UpdatePassword(email string, oldPassword string, newPassword string) error {
	if errs := validation.NewPassword(newPassword); errs != nil {
		return errs
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repository.UpdatePassword(email, func(storedHash string) error {
		if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(oldPassword)); err != nil {
			return errors.New(constants.ErrOldPassword)
		}
		return nil
	}, string(newHash))
}

func (s *AuthService) FindAllUsers() (*[]dto.UserListItem, error) {
	users, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserListItem, 0, len(*users))
	for _, user := range *users {
		items = append(items, dto.UserListItem{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Address: user.Address,
			Role:    user.Role,
		})
	}
	return &items, nil
}

func (s *AuthService) CountUsers() (int64, error) {
	return s.repository.Count()
}
