package config

import (
	"context"
	"fmt"
	"os"

	"backend/logger"
	"backend/models"
	"backend/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB connects to postgres and migrates the schema. Credentials come
// from AWS Secrets Manager when DB_SECRET_ARN is set, otherwise from
// discrete env vars.
func InitDB() {
	log := logger.L()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system env")
	}

	dsn, err := buildDSN(context.Background())
	if err != nil {
		log.Error("failed to resolve database credentials", zap.Error(err))
		os.Exit(1)
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealLog{},
	); err != nil {
		log.Error("automigrate failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("database ready")
}

func buildDSN(ctx context.Context) (string, error) {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	port := os.Getenv("DB_PORT")

	if arn := os.Getenv("DB_SECRET_ARN"); arn != "" {
		secret, err := utils.GetDBSecret(ctx, arn)
		if err != nil {
			return "", err
		}
		host = secret.Host
		user = secret.Username
		password = secret.Password
		port = fmt.Sprintf("%d", secret.Port)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, os.Getenv("DB_NAME"), port,
	), nil
}
