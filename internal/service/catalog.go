package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/doughdesk/storefront-service/internal/domain/model"
	"github.com/doughdesk/storefront-service/internal/repository"
	"github.com/doughdesk/storefront-service/internal/service/cache"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CategoryAll is the pseudo-category that matches every catalog item.
const CategoryAll = "All"

// CatalogService provides read-only catalog operations.
type CatalogService interface {
	// List returns the catalog filtered by search term and category.
	List(ctx context.Context, search, category string) ([]model.CatalogItem, error)
	// GetByID returns a single catalog item.
	GetByID(ctx context.Context, id string) (*model.CatalogItem, error)
	// Categories returns the known categories, starting with CategoryAll.
	Categories(ctx context.Context) ([]string, error)
	// InvalidateCache clears the query cache (useful when the catalog is replaced).
	InvalidateCache()
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// CatalogServiceImpl implements CatalogService on top of a catalog repository.
type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
	cache       cache.Cache
}

// NewCatalogService creates a new catalog service with the given options.
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface, opts ...CatalogOption) CatalogService {
	s := &CatalogServiceImpl{catalogRepo: catalogRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithQueryCache enables filtered-list caching with the specified capacity and TTL.
func WithQueryCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithQueryCacheInterface allows injecting a custom cache implementation.
func WithQueryCacheInterface(c cache.Cache) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = c
	}
}

func (s *CatalogServiceImpl) List(ctx context.Context, search, category string) ([]model.CatalogItem, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	key := catalogQueryKey(search, category)
	if s.cache != nil {
		if items, ok := s.cache.Get(key); ok {
			return items, nil
		}
	}

	items, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterCatalog(items, search, category)

	if s.cache != nil {
		s.cache.Set(key, filtered)
	}
	return filtered, nil
}

// catalogQueryKey normalizes a search/category pair into a cache key.
func catalogQueryKey(search, category string) string {
	return strings.ToLower(strings.TrimSpace(search)) + "|" + category
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetByID(ctx, id)
}

func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]string, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	items, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return CatalogCategories(items), nil
}

// InvalidateCache clears the query cache.
func (s *CatalogServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// FilterCatalog filters items by a case-insensitive search term matched
// against name and description, and by category. An empty category or
// CategoryAll matches everything.
func FilterCatalog(items []model.CatalogItem, search, category string) []model.CatalogItem {
	search = strings.ToLower(strings.TrimSpace(search))
	filterCategory := category != "" && category != CategoryAll

	out := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if filterCategory && item.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// CatalogCategories returns CategoryAll followed by the distinct item
// categories in first-seen order.
func CatalogCategories(items []model.CatalogItem) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}
