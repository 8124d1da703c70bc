package controllers

import (
	"errors"
	"net/http"
	"store-rating/constants"
	"store-rating/dto"
	"store-rating/services"
	"store-rating/validation"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IStoreController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Rate(ctx *gin.Context)
}

type StoreController struct {
	service services.IStoreService
}

func NewStoreController(service services.IStoreService) IStoreController {
	return &StoreController{service: service}
}

func (c *StoreController) Create(ctx *gin.Context) {
	var input dto.CreateStoreInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	newStore, err := c.service.Create(input)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput, "fields": fieldErrs})
			return
		}
		logrus.WithError(err).Error("Create store: failed to insert")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Store added successfully", "storeId": newStore.ID})
}

func (c *StoreController) FindAll(ctx *gin.Context) {
	stores, err := c.service.FindAll()
	if err != nil {
		logrus.WithError(err).Error("List stores: query failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	items := make([]dto.StoreListItem, 0, len(*stores))
	for _, store := range *stores {
		items = append(items, dto.StoreListItem{
			ID:            store.ID,
			Name:          store.Name,
			Address:       store.Address,
			OverallRating: store.OverallRating,
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"stores": items})
}

func (c *StoreController) Rate(ctx *gin.Context) {
	storeID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return
	}

	var input dto.RateStoreInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRating})
		return
	}

	if _, err := c.service.Rate(uint(storeID), input); err != nil {
		var fieldErrs validation.Errors
		switch {
		case errors.As(err, &fieldErrs):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRating})
		case err.Error() == constants.ErrStoreNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrStoreNotFound})
		default:
			logrus.WithError(err).Error("Rate store: failed to save rating")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
