package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
		assert.Equal(t, 1000, cfg.Catalog.CacheSize)
		assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "storefront_service", cfg.Database.DatabaseName)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("SESSION_TTL", "10m")
		_ = os.Setenv("CATALOG_CACHE_SIZE", "500")
		_ = os.Setenv("CATALOG_CACHE_TTL", "10m")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("JWT_SECRET_KEY", "super-secret")
		_ = os.Setenv("SESSION_TOKEN_TTL", "2h")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
		assert.Equal(t, 500, cfg.Catalog.CacheSize)
		assert.Equal(t, 10*time.Minute, cfg.Catalog.CacheTTL)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, "super-secret", cfg.Auth.JWTSecretKey)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("SESSION_TTL", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	})

	t.Run("parses CORS origins and keeps defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
	})

	t.Run("loads database config from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		_ = os.Setenv("MONGODB_DATABASE", "bakery")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "bakery", cfg.Database.DatabaseName)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerFailureThreshold)
	})
}
