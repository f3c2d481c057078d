package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a session token fails validation.
var ErrInvalidToken = errors.New("invalid or expired session token")

// SessionClaims carries the session ID inside a signed session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates signed session tokens. Tokens are
// HS256 JWTs carrying the session ID; they let the service hand out
// tamper-proof session references when auth mode is enabled.
type SessionTokenService interface {
	// Generate issues a signed token for the given session ID.
	Generate(sessionID string) (string, error)
	// Validate checks a token and returns the session ID it carries.
	Validate(tokenString string) (string, error)
}

// SessionTokenServiceImpl implements SessionTokenService.
type SessionTokenServiceImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewSessionTokenService creates a session token service.
func NewSessionTokenService(secretKey string, tokenTTL time.Duration) SessionTokenService {
	return &SessionTokenServiceImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Generate issues a signed token for the given session ID.
func (s *SessionTokenServiceImpl) Generate(sessionID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate checks a token and returns the session ID it carries.
func (s *SessionTokenServiceImpl) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
