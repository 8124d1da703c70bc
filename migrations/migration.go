package main

import (
	"store-rating/infra"
	"store-rating/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}); err != nil {
		panic("Failed to migrate database")
	}

	infra.SeedAdminUser(db)
}
