package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/doughdesk/storefront-service/internal/domain/dto"
	"github.com/doughdesk/storefront-service/internal/i18n"
	"github.com/doughdesk/storefront-service/internal/logger"
	"github.com/doughdesk/storefront-service/internal/service"
)

// SessionHandler provides HTTP handlers for session lifecycle routes.
type SessionHandler struct {
	store  *service.SessionStore
	tokens service.SessionTokenService
}

// NewSessionHandler creates a new SessionHandler instance. The token service
// may be nil when token auth is disabled.
func NewSessionHandler(store *service.SessionStore, tokens service.SessionTokenService) *SessionHandler {
	return &SessionHandler{
		store:  store,
		tokens: tokens,
	}
}

// CreateSession handles POST /api/sessions requests.
//
// @Summary      Create a storefront session
// @Description  Creates a new session with an empty cart and a fresh order wizard. The session ID must be sent as X-Session-ID on subsequent requests; when token auth is enabled a signed session token is returned instead and must be presented as a Bearer token.
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session created"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session := h.store.Create()

	resp := dto.SessionResponse{
		SessionID: session.ID(),
		ExpiresAt: session.CreatedAt().Add(h.store.TTL()),
	}

	if h.tokens != nil {
		token, err := h.tokens.Generate(session.ID())
		if err != nil {
			// Roll the session back; the caller could never reference it.
			h.store.Delete(session.ID())
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		resp.Token = token
	}

	log := logger.Logger()
	log.Info().
		Str("session_id", session.ID()).
		Time("expires_at", resp.ExpiresAt).
		Msg("Session created")

	builder.SuccessCreated(resp)
}
