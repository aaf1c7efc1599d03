package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBFile           string
	OpenFoodFactsURL string
}

// Load reads .env (when present) and builds the configuration from the
// environment with local-development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Port:             getEnv("PORT", "3001"),
		DBFile:           getEnv("DB_FILE", "./data/db.json"),
		OpenFoodFactsURL: getEnv("OPENFOODFACTS_URL", "https://world.openfoodfacts.net"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
