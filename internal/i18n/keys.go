// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeySessionRequired indicates that a session reference is required.
	ErrKeySessionRequired = "error.session_required"
	// ErrKeySessionNotFound indicates an unknown or expired session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyItemNotInCart indicates a cart operation on an absent item.
	ErrKeyItemNotInCart = "error.item_not_in_cart"
	// ErrKeyInvalidFieldValue indicates a rejected order field value.
	ErrKeyInvalidFieldValue = "error.invalid_field_value"
	// ErrKeyOrderCompleted indicates a mutation on an already submitted order.
	ErrKeyOrderCompleted = "error.order_completed"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a session token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderSubmitted indicates a successfully submitted custom order.
	SuccessKeyOrderSubmitted = "success.order_submitted"
)
