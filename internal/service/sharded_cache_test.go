package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/doughdesk/storefront-service/internal/domain/model"
	"github.com/doughdesk/storefront-service/internal/repository"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{
			name:       "default shards when zero",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  0,
			wantShards: 16,
		},
		{
			name:       "default shards when negative",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  -1,
			wantShards: 16,
		},
		{
			name:       "rounds up to power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  3,
			wantShards: 4,
		},
		{
			name:       "exact power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  8,
			wantShards: 8,
		},
		{
			name:       "rounds 5 to 8",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  5,
			wantShards: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(tt.capacity, tt.ttl, tt.numShards)
			defer cache.Stop()

			assert.NotNil(t, cache)
			assert.Equal(t, tt.wantShards, cache.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), cache.shardMask)
			assert.Len(t, cache.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value []model.CatalogItem
	}{
		{
			name:  "set and get single value",
			key:   "bread|All",
			value: []model.CatalogItem{{ID: "sourdough-bread"}, {ID: "baguette"}},
		},
		{
			name:  "set and get empty key",
			key:   "|",
			value: model.DefaultCatalog(),
		},
		{
			name:  "set and get empty result list",
			key:   "pretzel|All",
			value: []model.CatalogItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Initially should miss
			_, found := cache.Get(tt.key)
			assert.False(t, found)

			// Set value
			cache.Set(tt.key, tt.value)

			// Should now hit
			result, found := cache.Get(tt.key)
			assert.True(t, found)
			assert.Equal(t, tt.value, result)
		})
	}
}

func TestShardedCache_Invalidate(t *testing.T) {
	tests := []struct {
		name          string
		keys          []string
		invalidateKey string
	}{
		{
			name:          "invalidate existing key",
			keys:          []string{"a|All", "b|All", "c|All"},
			invalidateKey: "b|All",
		},
		{
			name:          "invalidate non-existing key",
			keys:          []string{"a|All", "c|All"},
			invalidateKey: "b|All",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewShardedCache(100, time.Minute, 4)
			defer cache.Stop()

			// Set initial values
			for _, key := range tt.keys {
				cache.Set(key, []model.CatalogItem{{ID: key}})
			}

			// Invalidate
			cache.Invalidate(tt.invalidateKey)

			// Check invalidated key is gone
			_, found := cache.Get(tt.invalidateKey)
			assert.False(t, found)

			// Other keys should still exist
			for _, key := range tt.keys {
				if key != tt.invalidateKey {
					_, found := cache.Get(key)
					assert.True(t, found)
				}
			}
		})
	}
}

func TestShardedCache_Clear(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add some values
	for i := 0; i < 10; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), []model.CatalogItem{{ID: fmt.Sprintf("item-%d", i)}})
	}

	// Verify they exist
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, found)
	}

	// Clear
	cache.Clear()

	// All should be gone
	for i := 0; i < 10; i++ {
		_, found := cache.Get(fmt.Sprintf("key-%d", i))
		assert.False(t, found)
	}
}

func TestShardedCache_Metrics(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Set some values
	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), nil)
	}

	// Generate hits
	for i := 0; i < 5; i++ {
		cache.Get(fmt.Sprintf("key-%d", i))
	}

	// Generate misses
	for i := 100; i < 105; i++ {
		cache.Get(fmt.Sprintf("key-%d", i))
	}

	metrics := cache.Metrics()
	assert.Equal(t, int64(5), metrics.Hits)
	assert.Equal(t, int64(5), metrics.Misses)
}

func TestShardedCache_ShardDistribution(t *testing.T) {
	cache := NewShardedCache(100, time.Minute, 4)
	defer cache.Stop()

	// Add values that should be distributed across shards
	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), []model.CatalogItem{{ID: fmt.Sprintf("item-%d", i)}})
	}

	// Verify all can be retrieved
	for i := 0; i < 100; i++ {
		result, found := cache.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, found)
		assert.Equal(t, fmt.Sprintf("item-%d", i), result[0].ID)
	}
}

func TestCatalogService_ListUsesCache(t *testing.T) {
	repo := &countingCatalogRepo{items: model.DefaultCatalog()}
	svc := NewCatalogService(repo, WithQueryCache(100, time.Minute))
	defer svc.(*CatalogServiceImpl).cache.Stop()

	for i := 0; i < 3; i++ {
		items, err := svc.List(context.Background(), "bread", "All")
		assert.NoError(t, err)
		assert.Len(t, items, 2)
	}

	assert.Equal(t, 1, repo.listCalls, "repeated queries should be served from cache")

	svc.InvalidateCache()
	_, err := svc.List(context.Background(), "bread", "All")
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

// countingCatalogRepo counts List calls to observe cache behavior.
type countingCatalogRepo struct {
	items     []model.CatalogItem
	listCalls int
}

func (r *countingCatalogRepo) List(_ context.Context) ([]model.CatalogItem, error) {
	r.listCalls++
	out := make([]model.CatalogItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *countingCatalogRepo) GetByID(_ context.Context, id string) (*model.CatalogItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, repository.ErrCatalogItemNotFound
}

func (r *countingCatalogRepo) ReplaceAll(_ context.Context, items []model.CatalogItem) error {
	r.items = items
	return nil
}
