package cache

import "github.com/doughdesk/storefront-service/internal/domain/model"

// Cache defines the interface for catalog query cache operations.
// Keys are normalized query strings, values the filtered item lists.
type Cache interface {
	Get(key string) ([]model.CatalogItem, bool)
	Set(key string, value []model.CatalogItem)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
