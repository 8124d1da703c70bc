package infra

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func Initialize() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found; using environment variables")
	}
}
