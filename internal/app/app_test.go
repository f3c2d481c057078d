package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doughdesk/storefront-service/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Session: config.SessionConfig{
					TTL: 30 * time.Minute,
				},
				Catalog: config.CatalogConfig{
					CacheSize: 1000,
					CacheTTL:  5 * time.Minute,
				},
			},
		},
		{
			name: "creates router with token auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Session: config.SessionConfig{
					TTL: time.Minute,
				},
				Auth: config.AuthConfig{
					Enabled:      true,
					JWTSecretKey: "test-secret",
					TokenTTL:     time.Hour,
				},
			},
		},
		{
			name: "creates router with catalog cache disabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Session: config.SessionConfig{
					TTL: time.Minute,
				},
				Catalog: config.CatalogConfig{
					CacheSize: 0,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)

			assert.NotNil(t, router)
		})
	}
}

func TestInitializeApp_ServesStorefront(t *testing.T) {
	router := InitializeApp(config.Config{
		Server: config.ServerConfig{
			Port: "8080",
		},
		Session: config.SessionConfig{
			TTL: time.Minute,
		},
	})

	// Catalog is served from the built-in items when MongoDB is disabled
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sourdough-bread")

	req = httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
