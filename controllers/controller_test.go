package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"store-rating/infra"
	"store-rating/models"
	"store-rating/repositories"
	"store-rating/services"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp wires the full router against a fresh in-memory database,
// including the seeded admin account.
func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))
	infra.SeedAdminUser(db)

	userRepository := repositories.NewUserRepository(db)
	authService := services.NewAuthService(userRepository)
	authController := NewAuthController(authService)

	storeRepository := repositories.NewStoreRepository(db)
	ratingRepository := repositories.NewRatingRepository(db)
	storeService := services.NewStoreService(storeRepository, ratingRepository)
	storeController := NewStoreController(storeService)

	dashboardController := NewDashboardController(authService, storeService)

	r := gin.New()
	r.GET("/api", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
	})
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/update-password", authController.UpdatePassword)
	r.POST("/stores", storeController.Create)
	r.GET("/stores", storeController.FindAll)
	r.POST("/stores/:id/rate", storeController.Rate)
	r.GET("/users", dashboardController.FindAllUsers)
	r.GET("/users/count", dashboardController.UserCount)
	r.GET("/stores/count", dashboardController.StoreCount)
	r.GET("/ratings/count", dashboardController.RatingCount)

	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
