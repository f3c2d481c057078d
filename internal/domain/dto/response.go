package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (e.g. CartSnapshot for cart endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"item is not in the cart"`
	// Details contains additional error details (optional)
	// Example: {"field": "error message"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// Money renders an exact float amount as a two-decimal string. Monetary
// values stay exact floats internally; rounding happens only here, at the
// presentation boundary.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// SessionResponse is returned when a new storefront session is created.
// @Description Newly created storefront session
type SessionResponse struct {
	// SessionID identifies the session; send it as X-Session-ID on
	// subsequent requests
	SessionID string `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Token is a signed session token, present only when auth is enabled
	Token string `json:"token,omitempty"`
	// ExpiresAt is when the session expires if left idle
	ExpiresAt time.Time `json:"expires_at"`
} // @name SessionResponse

// CartLineResponse is one cart line with its presentation-rounded total.
// @Description A cart line with derived line total
type CartLineResponse struct {
	Item      model.CatalogItem `json:"item"`
	Quantity  int               `json:"quantity" example:"2"`
	LineTotal string            `json:"line_total" example:"7.98"`
} // @name CartLineResponse

// CartSnapshot is the full cart view with derived totals, rounded to two
// decimals for presentation.
// @Description Cart snapshot with item count and totals
type CartSnapshot struct {
	Lines     []CartLineResponse `json:"lines"`
	ItemCount int                `json:"item_count" example:"3"`
	Subtotal  string             `json:"subtotal" example:"14.97"`
	Tax       string             `json:"tax" example:"1.50"`
	Total     string             `json:"total" example:"16.47"`
} // @name CartSnapshot

// NewCartSnapshot builds a CartSnapshot from ordered cart lines and exact
// totals.
func NewCartSnapshot(lines []model.CartLine, itemCount int, totals model.CartTotals) CartSnapshot {
	out := CartSnapshot{
		Lines:     make([]CartLineResponse, 0, len(lines)),
		ItemCount: itemCount,
		Subtotal:  Money(totals.Subtotal),
		Tax:       Money(totals.Tax),
		Total:     Money(totals.Total),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, CartLineResponse{
			Item:      line.Item,
			Quantity:  line.Quantity,
			LineTotal: Money(line.LineTotal()),
		})
	}
	return out
}

// QuoteResponse is the custom order price quote, rounded for presentation.
// @Description Custom order price quote
type QuoteResponse struct {
	ItemsTotal  string `json:"items_total" example:"30.00"`
	DeliveryFee string `json:"delivery_fee" example:"5.00"`
	Total       string `json:"total" example:"35.00"`
} // @name QuoteResponse

// NewQuoteResponse builds a QuoteResponse from an exact quote.
func NewQuoteResponse(quote model.OrderQuote) QuoteResponse {
	return QuoteResponse{
		ItemsTotal:  Money(quote.ItemsTotal),
		DeliveryFee: Money(quote.DeliveryFee),
		Total:       Money(quote.Total),
	}
}

// OrderStateResponse is the full wizard view: current step, draft, validation
// errors and the running quote.
// @Description Order wizard snapshot
type OrderStateResponse struct {
	// Step is the current wizard step (1..3)
	Step int `json:"step" example:"1"`
	// Completed reports whether the order has been submitted
	Completed bool `json:"completed"`
	// Draft is the in-progress order draft
	Draft model.OrderDraft `json:"draft"`
	// Errors maps field keys to validation messages from the most recent
	// validation attempt
	Errors map[string]string `json:"errors"`
	// Quote is the running custom order quote
	Quote QuoteResponse `json:"quote"`
} // @name OrderStateResponse

// TransitionResponse reports the outcome of a wizard transition attempt.
// A failed validation is not an HTTP error: Transitioned is false and the
// order snapshot carries the error map.
// @Description Outcome of a wizard transition attempt
type TransitionResponse struct {
	// Transitioned reports whether the transition was applied
	Transitioned bool `json:"transitioned"`
	// Order is the wizard snapshot after the attempt
	Order OrderStateResponse `json:"order"`
} // @name TransitionResponse

// CategoriesResponse lists the known catalog categories.
// @Description Catalog category list
type CategoriesResponse struct {
	Categories []string `json:"categories" example:"All,Bread,Pastries"`
} // @name CategoriesResponse
