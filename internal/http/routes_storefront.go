package http

import (
	"github.com/gin-gonic/gin"
	"github.com/doughdesk/storefront-service/internal/middleware"
	"github.com/doughdesk/storefront-service/internal/service"
)

// StorefrontRoutes handles storefront route registration: sessions, catalog
// browsing, the cart, and the order wizard.
type StorefrontRoutes struct {
	sessionHandler *SessionHandler
	catalogHandler *CatalogHandler
	cartHandler    *CartHandler
	orderHandler   *OrderHandler
}

// NewStorefrontRoutes creates a new StorefrontRoutes instance.
func NewStorefrontRoutes(store *service.SessionStore, tokens service.SessionTokenService, catalogService service.CatalogService) *StorefrontRoutes {
	return &StorefrontRoutes{
		sessionHandler: NewSessionHandler(store, tokens),
		catalogHandler: NewCatalogHandler(catalogService),
		cartHandler:    NewCartHandler(catalogService),
		orderHandler:   NewOrderHandler(),
	}
}

// RegisterPublicRoutes registers routes that do not need a session: session
// creation and catalog browsing.
func (r *StorefrontRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", r.sessionHandler.CreateSession)
	rg.GET("/catalog", r.catalogHandler.ListCatalog)
	rg.GET("/catalog/categories", r.catalogHandler.ListCategories)
}

// RegisterSessionRoutes registers the cart and order wizard routes behind the
// session middleware. Every route here operates on the caller's own session
// state.
func (r *StorefrontRoutes) RegisterSessionRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	session := rg.Group("")
	session.Use(middleware.SessionAuth(cfg.SessionStore, cfg.SessionTokens, cfg.EnableAuth))

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		session.Use(limiter.SessionRateLimit())
	}

	session.GET("/cart", r.cartHandler.GetCart)
	session.POST("/cart/items", r.cartHandler.AddItem)
	session.DELETE("/cart/items/:id", r.cartHandler.RemoveItem)

	session.GET("/order", r.orderHandler.GetOrder)
	session.PATCH("/order/fields", r.orderHandler.SetField)
	session.POST("/order/items/:id/toggle", r.orderHandler.ToggleItem)
	session.PUT("/order/items/:id/variant", r.orderHandler.SetVariant)
	session.POST("/order/advance", r.orderHandler.Advance)
	session.POST("/order/retreat", r.orderHandler.Retreat)
	session.POST("/order/submit", r.orderHandler.Submit)
	session.POST("/order/reset", r.orderHandler.Reset)
}
