package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/doughdesk/storefront-service/internal/domain/dto"
	"github.com/doughdesk/storefront-service/internal/i18n"
	"github.com/doughdesk/storefront-service/internal/metrics"
	"github.com/doughdesk/storefront-service/internal/middleware"
	"github.com/doughdesk/storefront-service/internal/service"
)

// OrderHandler provides HTTP handlers for the custom order wizard routes.
// All operations act on the session resolved by the session middleware.
type OrderHandler struct{}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// orderState builds the presentation snapshot for the session's wizard.
func orderState(session *service.Session) dto.OrderStateResponse {
	var state dto.OrderStateResponse
	session.View(func(_ *service.Cart, wizard *service.Wizard) {
		state = dto.OrderStateResponse{
			Step:      int(wizard.Step()),
			Completed: wizard.Completed(),
			Draft:     wizard.Draft(),
			Errors:    wizard.Errors(),
			Quote:     dto.NewQuoteResponse(wizard.Quote()),
		}
	})
	return state
}

// resolveSession pulls the session from the context, writing a 401 when it is
// absent.
func resolveSession(c *gin.Context, builder *ResponseBuilder) (*service.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeySessionNotFound, nil)
		return nil, false
	}
	return session, true
}

// GetOrder handles GET /api/order requests.
//
// @Summary      Get the order wizard state
// @Description  Returns the wizard snapshot: current step (1..3), completion flag, the in-progress draft, validation errors from the most recent validation attempt, and the running price quote.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderStateResponse} "Wizard snapshot"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	builder.SuccessOK(orderState(session))
}

// SetField handles PATCH /api/order/fields requests.
//
// @Summary      Set an order draft field
// @Description  Overwrites a single draft field. Field names match the draft's JSON names: name, phone, address, delivery_date, delivery_time, payment_method, special_requests. Enumerated fields and the delivery date are checked immediately; a rejected value leaves the draft and error map unchanged and returns 400. A successful set clears only that field's validation error.
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        request body dto.SetOrderFieldRequest true "Field and value"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderStateResponse} "Wizard snapshot after the set"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown field or rejected value"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      409 {object} dto.ErrorResponse "Conflict - order already submitted"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/fields [patch]
func (h *OrderHandler) SetField(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.SetOrderFieldRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	err = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		return wizard.SetField(req.Field, req.Value)
	})
	if err != nil {
		h.writeWizardError(builder, err)
		return
	}

	builder.SuccessOK(orderState(session))
}

// ToggleItem handles POST /api/order/items/:id/toggle requests.
//
// @Summary      Toggle a custom order item
// @Description  Flips the selection state of a custom order item. The chosen variant is never touched, so deselecting and reselecting an item keeps its variant.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        id path string true "Custom order item ID" example(birthday-cake)
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderStateResponse} "Wizard snapshot after the toggle"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown custom order item"
// @Failure      409 {object} dto.ErrorResponse "Conflict - order already submitted"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/items/{id}/toggle [post]
func (h *OrderHandler) ToggleItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	itemID := c.Param("id")
	err := session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		return wizard.ToggleItem(itemID)
	})
	if err != nil {
		h.writeWizardError(builder, err)
		return
	}

	builder.SuccessOK(orderState(session))
}

// SetVariant handles PUT /api/order/items/:id/variant requests.
//
// @Summary      Choose a variant for a custom order item
// @Description  Selects one of the item's offered variants. A variant outside the item's option set is rejected with 400 and the current variant is kept.
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        id path string true "Custom order item ID" example(birthday-cake)
// @Param        request body dto.SetVariantRequest true "Variant to select"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderStateResponse} "Wizard snapshot after the selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - variant not offered"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown custom order item"
// @Failure      409 {object} dto.ErrorResponse "Conflict - order already submitted"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/items/{id}/variant [put]
func (h *OrderHandler) SetVariant(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.SetVariantRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	itemID := c.Param("id")
	err = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		return wizard.SetVariant(itemID, req.Option)
	})
	if err != nil {
		h.writeWizardError(builder, err)
		return
	}

	builder.SuccessOK(orderState(session))
}

// Advance handles POST /api/order/advance requests.
//
// @Summary      Advance the order wizard
// @Description  Attempts to move to the next step. Leaving step 1 validates customer info and leaving step 2 validates item selection; either attempt replaces the error map wholly. A failed validation is not an HTTP error: the response reports transitioned=false and the snapshot carries the error map.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.TransitionResponse} "Transition outcome"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/advance [post]
func (h *OrderHandler) Advance(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	var transitioned bool
	_ = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		transitioned = wizard.Advance()
		return nil
	})

	metrics.RecordWizardTransition("advance", transitionOutcome(transitioned))
	builder.SuccessOK(dto.TransitionResponse{
		Transitioned: transitioned,
		Order:        orderState(session),
	})
}

// Retreat handles POST /api/order/retreat requests.
//
// @Summary      Go back one wizard step
// @Description  Moves back one step unconditionally, keeping the draft and any displayed errors intact. At step 1 nothing happens and transitioned=false.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.TransitionResponse} "Transition outcome"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/retreat [post]
func (h *OrderHandler) Retreat(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	var transitioned bool
	_ = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		transitioned = wizard.Retreat()
		return nil
	})

	metrics.RecordWizardTransition("retreat", transitionOutcome(transitioned))
	builder.SuccessOK(dto.TransitionResponse{
		Transitioned: transitioned,
		Order:        orderState(session),
	})
}

// Submit handles POST /api/order/submit requests.
//
// @Summary      Submit the custom order
// @Description  Finalizes the order at step 3. Item selection is re-validated; customer info is not re-checked at this point. On success the order is marked completed and the draft is frozen; the response carries the final snapshot. Submission is terminal and local: it is logged and counted, with no backend delivery.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse{data=dto.TransitionResponse} "Submission outcome"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/submit [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	var submitted bool
	var selectedCount int
	_ = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		submitted = wizard.Submit()
		selectedCount = len(wizard.Draft().SelectedItems())
		return nil
	})

	if submitted {
		metrics.RecordOrderSubmission("success")
		auditSessionAction(c, middleware.ActionOrderSubmit, "Custom order submitted", map[string]interface{}{
			"selected_items": selectedCount,
		})
	} else {
		metrics.RecordOrderSubmission("rejected")
	}

	builder.SuccessOK(dto.TransitionResponse{
		Transitioned: submitted,
		Order:        orderState(session),
	})
}

// Reset handles POST /api/order/reset requests.
//
// @Summary      Reset the order wizard
// @Description  Discards the order and starts over at step 1 with fresh defaults: delivery date one day ahead, the midday slot, card payment, nothing selected, and every item back on its first variant. Reset also works after submission.
// @Tags         Order
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.TransitionResponse} "Snapshot after the reset"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/order/reset [post]
func (h *OrderHandler) Reset(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	_ = session.Update(func(_ *service.Cart, wizard *service.Wizard) error {
		wizard.Reset()
		return nil
	})

	auditSessionAction(c, middleware.ActionOrderReset, "Order wizard reset", nil)

	builder.SuccessOK(dto.TransitionResponse{
		Transitioned: true,
		Order:        orderState(session),
	})
}

// writeWizardError maps wizard errors onto HTTP responses.
func (h *OrderHandler) writeWizardError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrOrderCompleted):
		builder.Error(http.StatusConflict, i18n.ErrKeyOrderCompleted, err)
	case errors.Is(err, service.ErrItemNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrUnknownField), errors.Is(err, service.ErrInvalidFieldValue), errors.Is(err, service.ErrInvalidVariant):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidFieldValue, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// transitionOutcome maps a transition result onto a metric label.
func transitionOutcome(transitioned bool) string {
	if transitioned {
		return "transitioned"
	}
	return "rejected"
}
