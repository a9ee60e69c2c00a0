package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "TLS_CERT_FILE", "TLS_KEY_FILE", "MONGODB_URI", "MONGODB_DATABASE",
	"REDIS_URL", "SESSION_SECRET", "SESSION_TTL", "SHOPIFY_API_KEY", "SHOPIFY_API_SECRET",
	"SHOPIFY_SHOP", "SHOPIFY_SCOPES", "SHOPIFY_API_VERSION", "SHOPIFY_ONLINE_TOKENS",
	"APP_URL", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
}

func setRequired(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SHOPIFY_API_KEY", "key")
	t.Setenv("SHOPIFY_API_SECRET", "shh")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "./SSL/fullchain.pem", cfg.TLSCertFile)
	assert.Equal(t, "./SSL/privkey.pem", cfg.TLSKeyFile)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "shopify_sync", cfg.MongoDatabase)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "newteststore098", cfg.ShopifyShop)
	assert.Equal(t, []string{"read_products", "read_orders", "read_draft_orders", "read_customers", "read_fulfillments"}, cfg.ShopifyScopes)
	assert.Empty(t, cfg.ShopifyAPIVersion)
	assert.True(t, cfg.ShopifyOnlineTokens)
	assert.Equal(t, "https://localhost:5000", cfg.AppURL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "https://localhost:5000/auth/shopify/callback", cfg.CallbackURL())
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8443")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SHOPIFY_SCOPES", "read_products, read_orders ,")
	t.Setenv("SHOPIFY_ONLINE_TOKENS", "false")
	t.Setenv("SHOPIFY_API_VERSION", "2024-10")
	t.Setenv("APP_URL", "https://sync.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8443", cfg.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"read_products", "read_orders"}, cfg.ShopifyScopes)
	assert.False(t, cfg.ShopifyOnlineTokens)
	assert.Equal(t, "2024-10", cfg.ShopifyAPIVersion)
	assert.Equal(t, "https://sync.example.com/auth/shopify/callback", cfg.CallbackURL())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SHOPIFY_API_SECRET", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
	assert.Contains(t, err.Error(), "SHOPIFY_API_SECRET")
	assert.NotContains(t, err.Error(), "SHOPIFY_API_KEY")
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SESSION_TTL", "forever"},
		{"SHOPIFY_ONLINE_TOKENS", "maybe"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
