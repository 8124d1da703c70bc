package controllers

import (
	"net/http"
	"store-rating/constants"
	"store-rating/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// IDashboardController serves the admin dashboard reads: the user list and
// the three counters. Counters hit the database on every call.
type IDashboardController interface {
	FindAllUsers(ctx *gin.Context)
	UserCount(ctx *gin.Context)
	StoreCount(ctx *gin.Context)
	RatingCount(ctx *gin.Context)
}

type DashboardController struct {
	authService  services.IAuthService
	storeService services.IStoreService
}

func NewDashboardController(authService services.IAuthService, storeService services.IStoreService) IDashboardController {
	return &DashboardController{
		authService:  authService,
		storeService: storeService,
	}
}

func (c *DashboardController) FindAllUsers(ctx *gin.Context) {
	users, err := c.authService.FindAllUsers()
	if err != nil {
		logrus.WithError(err).Error("List users: query failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

func (c *DashboardController) UserCount(ctx *gin.Context) {
	count, err := c.authService.CountUsers()
	if err != nil {
		logrus.WithError(err).Error("User count: query failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (c *DashboardController) StoreCount(ctx *gin.Context) {
	count, err := c.storeService.CountStores()
	if err != nil {
		logrus.WithError(err).Error("Store count: query failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

func (c *DashboardController) RatingCount(ctx *gin.Context) {
	count, err := c.storeService.CountRatings()
	if err != nil {
		logrus.WithError(err).Error("Rating count: query failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}
