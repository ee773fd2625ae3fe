package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-backend/pkg/logger"
)

func main() {
	// .env is for local development; production uses real environment
	// variables.
	envFileErr := godotenv.Load()

	env := getEnv("APP_ENV", "development")
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Init(env)
	if envFileErr != nil {
		logger.Debug("no .env file found, using system environment")
	}

	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
