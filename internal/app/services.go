// Package app provides service initialization.
package app

import (
	"github.com/doughdesk/storefront-service/config"
	"github.com/doughdesk/storefront-service/internal/metrics"
	"github.com/doughdesk/storefront-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	SessionStore  *service.SessionStore
	SessionTokens service.SessionTokenService
}

// InitializeServices initializes the session store and, when token auth is
// enabled, the session token service.
func InitializeServices(cfg config.Config) *ServiceComponents {
	store := service.NewSessionStore(
		cfg.Session.TTL,
		service.WithSessionCounter(metrics.AdjustActiveSessions),
	)

	var tokens service.SessionTokenService
	if cfg.Auth.Enabled {
		tokens = service.NewSessionTokenService(cfg.Auth.JWTSecretKey, cfg.Auth.TokenTTL)
	}

	return &ServiceComponents{
		SessionStore:  store,
		SessionTokens: tokens,
	}
}
