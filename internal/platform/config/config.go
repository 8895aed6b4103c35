package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	SeedAdminEmail     string
	SeedAdminPassword  string
	RunMigrations      bool
	RunSeed            bool
	MigrationsDir      string
	ReceiptDir         string
	MetricsEnabled     bool
	PresenceBonusRate  float64
	WithholdingRate    float64
	LatenessToleranceM int
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Environment:        getEnv("APP_ENV", "development"),
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", ""),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		ReceiptDir:         getEnv("RECEIPT_DIR", "storage/receipts"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		PresenceBonusRate:  getEnvFloat("PRESENCE_BONUS_RATE", 0.20),
		WithholdingRate:    getEnvFloat("WITHHOLDING_RATE", 0.20),
		LatenessToleranceM: getEnvInt("LATENESS_TOLERANCE_MINUTES", 15),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be set or RUN_SEED disabled in production")
		}
	}
	if c.PresenceBonusRate < 0 || c.PresenceBonusRate > 1 {
		return fmt.Errorf("PRESENCE_BONUS_RATE must be between 0 and 1")
	}
	if c.WithholdingRate < 0 || c.WithholdingRate > 1 {
		return fmt.Errorf("WITHHOLDING_RATE must be between 0 and 1")
	}
	if c.LatenessToleranceM < 0 {
		return fmt.Errorf("LATENESS_TOLERANCE_MINUTES must not be negative")
	}
	return nil
}
