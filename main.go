package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"store-rating/controllers"
	"store-rating/infra"
	"store-rating/middlewares"
	"store-rating/models"
	"store-rating/repositories"
	"store-rating/services"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	authService := services.NewAuthService(userRepository)
	authController := controllers.NewAuthController(authService)

	storeRepository := repositories.NewStoreRepository(db)
	ratingRepository := repositories.NewRatingRepository(db)
	storeService := services.NewStoreService(storeRepository, ratingRepository)
	storeController := controllers.NewStoreController(storeService)

	dashboardController := controllers.NewDashboardController(authService, storeService)

	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())

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

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}); err != nil {
			panic("Failed to migrate database")
		}
		infra.SeedAdminUser(db)
	}

	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}
	logrus.Info("Server exited")
}
