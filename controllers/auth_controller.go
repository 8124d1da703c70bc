package controllers

import (
	"errors"
	"net/http"
	"store-rating/constants"
	"store-rating/dto"
	"store-rating/services"
	"store-rating/validation"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	UpdatePassword(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	userID, err := c.service.Register(input)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput, "fields": fieldErrs})
			return
		}
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailTaken})
			return
		}
		logrus.WithError(err).Error("Register: failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "userId": userID})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	user, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if err.Error() == constants.ErrInvalidCredentials {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredentials})
			return
		}
		logrus.WithError(err).Error("Login: lookup failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

func (c *AuthController) UpdatePassword(ctx *gin.Context) {
	var input dto.UpdatePasswordInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := c.service.UpdatePassword(input.Email, input.OldPassword, input.NewPassword)
	if err != nil {
		var fieldErrs validation.Errors
		switch {
		case errors.As(err, &fieldErrs):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput, "fields": fieldErrs})
		case err.Error() == constants.ErrUserNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
		case err.Error() == constants.ErrOldPassword:
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrOldPassword})
		default:
			logrus.WithError(err).Error("UpdatePassword: failed to update")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
