package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/doughdesk/storefront-service/internal/domain/dto"
	"github.com/doughdesk/storefront-service/internal/i18n"
	"github.com/doughdesk/storefront-service/internal/metrics"
	"github.com/doughdesk/storefront-service/internal/middleware"
	"github.com/doughdesk/storefront-service/internal/repository"
	"github.com/doughdesk/storefront-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes. All operations act on
// the session resolved by the session middleware.
type CartHandler struct {
	catalogService service.CatalogService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(catalogService service.CatalogService) *CartHandler {
	return &CartHandler{catalogService: catalogService}
}

// cartSnapshot builds the presentation snapshot for the session's cart.
func cartSnapshot(session *service.Session) dto.CartSnapshot {
	lines, itemCount, totals := session.CartSnapshot()
	return dto.NewCartSnapshot(lines, itemCount, totals)
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the cart
// @Description  Returns the session's cart: lines in the order items first entered the cart, total unit count, and subtotal/tax/total rounded to two decimals.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartSnapshot} "Cart snapshot"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	builder.SuccessOK(cartSnapshot(session))
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add an item to the cart
// @Description  Adds one unit of a catalog item to the cart. If the item already has a line its quantity is incremented; otherwise a new line is appended at the end. Adding always succeeds for a known catalog item; advertised stock is informational only.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddCartItemRequest true "Item to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartSnapshot} "Updated cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown catalog item"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.AddCartItemRequest](c)
	if err != nil {
		metrics.RecordCartOperation("add", "invalid_request")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	item, err := h.catalogService.GetByID(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			metrics.RecordCartOperation("add", "not_found")
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		metrics.RecordCartOperation("add", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	_ = session.Update(func(cart *service.Cart, _ *service.Wizard) error {
		cart.AddItem(*item)
		return nil
	})

	metrics.RecordCartOperation("add", "success")
	auditSessionAction(c, middleware.ActionCartAdd, "Item added to cart", map[string]interface{}{
		"item_id": item.ID,
	})

	builder.SuccessOK(cartSnapshot(session))
}

// RemoveItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove one unit of an item from the cart
// @Description  Decrements the quantity of the cart line for the given item; the line is deleted when its quantity reaches zero. Returns 404 when the cart has no line for the item, leaving the cart untouched.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Session ID (required unless token auth is enabled)"
// @Param        Authorization header string false "Bearer session token (required if token auth enabled)"
// @Param        id path string true "Catalog item ID" example(chocolate-croissant)
// @Success      200 {object} dto.SuccessResponse{data=dto.CartSnapshot} "Updated cart snapshot"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown or expired session"
// @Failure      404 {object} dto.ErrorResponse "Not found - item is not in the cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, ok := resolveSession(c, builder)
	if !ok {
		return
	}

	itemID := c.Param("id")
	err := session.Update(func(cart *service.Cart, _ *service.Wizard) error {
		return cart.RemoveItem(itemID)
	})
	if err != nil {
		metrics.RecordCartOperation("remove", "not_found")
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotInCart, err)
		return
	}

	metrics.RecordCartOperation("remove", "success")
	auditSessionAction(c, middleware.ActionCartRemove, "Item removed from cart", map[string]interface{}{
		"item_id": itemID,
	})

	builder.SuccessOK(cartSnapshot(session))
}

// auditSessionAction writes an audit entry when a logging service is wired
// into the request context.
func auditSessionAction(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}
