package config

import (
	"fmt"
	"os"
	"strconv"

	"backend/logger"
	"backend/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env when present; a missing file is fine in deployed
// environments where everything comes from the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using process environment")
	}

	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			logger.Fatal("required environment variable not set", zap.String("key", key))
		}
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.InventoryItem{},
		&models.Store{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
		&models.MealPlan{},
		&models.Review{},
		&models.Feedback{},
	)
	if err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}

// PingDB reports database connectivity for the health endpoint.
func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Port returns the listen port, defaulting to 8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

// FrontendOrigin returns the allowed CORS origin, if any.
func FrontendOrigin() string {
	return os.Getenv("FRONTEND_ORIGIN")
}

// RateLimit returns requests-per-second and burst for the auth routes.
func RateLimit() (float64, int) {
	rps := 5.0
	burst := 10
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}
	return rps, burst
}
