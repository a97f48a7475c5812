// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DBPath       string
	LogLevel     string
	CORSOrigins  []string
	IsProduction bool
}

// Load reads configuration from environment variables and a .env file if
// present. Every setting has a workable default, so a bare `go run` works.
func Load() (*Config, error) {
	// Ignore a missing .env; real env vars still apply.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "./data/triptally.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGINS", []string{"*"})
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		DBPath:       viper.GetString("DB_PATH"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		CORSOrigins:  viper.GetStringSlice("CORS_ORIGINS"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
	}

	if cfg.IsProduction && len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		slog.Warn("Running in production with wildcard CORS origins")
	}

	return cfg, nil
}
