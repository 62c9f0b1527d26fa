package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	UploadsDir     string
	StorageTimeout time.Duration
	// CORSAllowedOrigins lists the frontend origins allowed to call the API.
	CORSAllowedOrigins []string
	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("STORAGE_TIMEOUT", "5s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.UploadsDir = viper.GetString("UPLOADS_DIR")
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
		log.Printf("Warning: UPLOADS_DIR not set. Defaulting to %s.\n", cfg.UploadsDir)
	}

	storageTimeoutStr := viper.GetString("STORAGE_TIMEOUT")
	storageTimeout, err := time.ParseDuration(storageTimeoutStr)
	if err != nil || storageTimeout <= 0 {
		storageTimeout = 5 * time.Second
		if storageTimeoutStr != "" {
			log.Printf("Warning: Invalid value for STORAGE_TIMEOUT ('%s'). Defaulting to %s.\n", storageTimeoutStr, storageTimeout)
		}
	}
	cfg.StorageTimeout = storageTimeout

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	return cfg, nil
}
