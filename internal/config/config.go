package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the service configuration read from the environment
type Config struct {
	Port        string
	TLSCertFile string
	TLSKeyFile  string

	MongoURI      string
	MongoDatabase string

	RedisURL      string
	SessionSecret string
	SessionTTL    time.Duration

	ShopifyAPIKey       string
	ShopifyAPISecret    string
	ShopifyShop         string
	ShopifyScopes       []string
	ShopifyAPIVersion   string
	ShopifyOnlineTokens bool

	AppURL             string
	CORSAllowedOrigins []string
	LogLevel           zerolog.Level
}

// Load reads .env when present, then the process environment.
// A missing .env file is reported through the logger and is not an error.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: .env file not found")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables alone
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		TLSCertFile:       getEnv("TLS_CERT_FILE", "./SSL/fullchain.pem"),
		TLSKeyFile:        getEnv("TLS_KEY_FILE", "./SSL/privkey.pem"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "shopify_sync"),
		RedisURL:          os.Getenv("REDIS_URL"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		ShopifyAPIKey:     os.Getenv("SHOPIFY_API_KEY"),
		ShopifyAPISecret:  os.Getenv("SHOPIFY_API_SECRET"),
		ShopifyShop:       getEnv("SHOPIFY_SHOP", "newteststore098"),
		ShopifyScopes:     splitList(getEnv("SHOPIFY_SCOPES", "read_products,read_orders,read_draft_orders,read_customers,read_fulfillments")),
		ShopifyAPIVersion: os.Getenv("SHOPIFY_API_VERSION"),
		AppURL:            strings.TrimSuffix(getEnv("APP_URL", "https://localhost:5000"), "/"),
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.ShopifyOnlineTokens, err = strconv.ParseBool(getEnv("SHOPIFY_ONLINE_TOKENS", "true")); err != nil {
		return nil, fmt.Errorf("invalid SHOPIFY_ONLINE_TOKENS: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CallbackURL is the OAuth redirect registered with Shopify
func (c *Config) CallbackURL() string {
	return c.AppURL + "/auth/shopify/callback"
}

func (c *Config) validate() error {
	var missing []string
	if c.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if c.ShopifyAPIKey == "" {
		missing = append(missing, "SHOPIFY_API_KEY")
	}
	if c.ShopifyAPISecret == "" {
		missing = append(missing, "SHOPIFY_API_SECRET")
	}
	if len(missing) > 0 {
		return errors.New(strings.Join(missing, ", ") + " environment variable is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
