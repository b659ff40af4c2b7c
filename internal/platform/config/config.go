package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Quote provider
	PriceAPIBaseURL   string
	PriceAPIToken     string
	PriceAPITimeout   time.Duration
	PriceFreshnessTTL time.Duration
	PriceRateLimit    string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("PRICE_API_BASE_URL", "https://finnhub.io/api/v1")
	viper.SetDefault("PRICE_API_TOKEN", "")
	viper.SetDefault("PRICE_API_TIMEOUT", "10s")
	viper.SetDefault("PRICE_FRESHNESS_TTL", "24h")
	viper.SetDefault("PRICE_RATE_LIMIT", "30-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.PriceAPIBaseURL = viper.GetString("PRICE_API_BASE_URL")
	cfg.PriceAPIToken = viper.GetString("PRICE_API_TOKEN")
	if cfg.PriceAPIToken == "" {
		log.Println("Warning: PRICE_API_TOKEN not set. Live quote fetches will fail.")
	}

	timeoutStr := viper.GetString("PRICE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for PRICE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.PriceAPITimeout = timeout

	ttlStr := viper.GetString("PRICE_FRESHNESS_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
		log.Printf("Warning: Invalid value for PRICE_FRESHNESS_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.PriceFreshnessTTL = ttl

	cfg.PriceRateLimit = viper.GetString("PRICE_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
