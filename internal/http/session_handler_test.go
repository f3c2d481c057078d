package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doughdesk/storefront-service/internal/domain/dto"
	"github.com/doughdesk/storefront-service/internal/middleware"
	"github.com/doughdesk/storefront-service/internal/service"
)

// failingTokenService always fails token generation.
type failingTokenService struct{}

func (failingTokenService) Generate(string) (string, error) {
	return "", errors.New("signing failed")
}

func (failingTokenService) Validate(string) (string, error) {
	return "", errors.New("signing failed")
}

func newSessionTestRouter(t *testing.T, tokens service.SessionTokenService) (*gin.Engine, *service.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := service.NewSessionStore(time.Minute)
	t.Cleanup(store.Stop)

	handler := NewSessionHandler(store, tokens)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/api/sessions", handler.CreateSession)
	return router, store
}

func TestSessionHandler_CreateSession(t *testing.T) {
	router, store := newSessionTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dataBytes, _ := json.Marshal(resp.Data)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(dataBytes, &session))

	assert.NotEmpty(t, session.SessionID)
	assert.Empty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	// Session is retrievable from the store
	_, err := store.Get(session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Count())
}

func TestSessionHandler_CreateSession_WithToken(t *testing.T) {
	tokens := service.NewSessionTokenService("test-secret", time.Hour)
	router, store := newSessionTestRouter(t, tokens)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	dataBytes, _ := json.Marshal(resp.Data)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(dataBytes, &session))

	require.NotEmpty(t, session.Token)

	// Token resolves back to the created session
	sessionID, err := tokens.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, sessionID)
	_, err = store.Get(sessionID)
	assert.NoError(t, err)
}

func TestSessionHandler_CreateSession_TokenFailure(t *testing.T) {
	router, store := newSessionTestRouter(t, failingTokenService{})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The half-created session is rolled back
	assert.Equal(t, 0, store.Count())
}

func TestSessionHandler_SessionsAreIsolated(t *testing.T) {
	router, store := newSessionTestRouter(t, nil)

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.SuccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		dataBytes, _ := json.Marshal(resp.Data)
		var session dto.SessionResponse
		require.NoError(t, json.Unmarshal(dataBytes, &session))
		ids[session.SessionID] = true
	}

	assert.Len(t, ids, 3)
	assert.Equal(t, 3, store.Count())
}
