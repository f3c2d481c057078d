package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/doughdesk/storefront-service/internal/domain/dto"
	"github.com/doughdesk/storefront-service/internal/i18n"
	"github.com/doughdesk/storefront-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog browsing routes.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCatalog handles GET /api/catalog requests.
//
// @Summary      Browse the catalog
// @Description  Returns the bakery catalog, optionally filtered by a case-insensitive search term (matched against name and description) and by category. Category "All" or an empty category matches everything.
// @Tags         Catalog
// @Produce      json
// @Param        search   query string false "Search term"
// @Param        category query string false "Category filter" example(Bread)
// @Success      200 {object} dto.SuccessResponse "Filtered catalog items"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	search := c.Query("search")
	category := c.Query("category")

	items, err := h.catalogService.List(c.Request.Context(), search, category)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(items)
}

// ListCategories handles GET /api/catalog/categories requests.
//
// @Summary      List catalog categories
// @Description  Returns the known catalog categories in first-seen order, starting with the pseudo-category "All".
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CategoriesResponse} "Category list"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.CategoriesResponse{Categories: categories})
}
