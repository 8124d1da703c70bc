package infra

import (
	"os"
	"store-rating/constants"
	"store-rating/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the admin account if none exists yet. The admin is a
// regular row with the admin role, so login takes the same path as everyone
// else. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD, defaulting to the
// legacy pair.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = constants.DefaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = constants.DefaultAdminPassword
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		logrus.WithError(err).Error("failed to check admin user")
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("failed to hash admin password")
		return
	}

	admin := models.User{
		Name:     constants.DefaultAdminName,
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		logrus.WithError(err).Error("failed to create admin user")
		return
	}

	logrus.WithField("email", email).Info("created admin user")
}
