package repository

import (
	"context"
	"sync"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// InMemoryCatalogRepository is the catalog store used when MongoDB is
// disabled. It serves a copy-on-read snapshot of the seeded catalog.
type InMemoryCatalogRepository struct {
	mu    sync.RWMutex
	items []model.CatalogItem
}

// NewInMemoryCatalogRepository creates an in-memory catalog seeded with the
// given items.
func NewInMemoryCatalogRepository(items []model.CatalogItem) *InMemoryCatalogRepository {
	repo := &InMemoryCatalogRepository{}
	repo.items = make([]model.CatalogItem, len(items))
	copy(repo.items, items)
	return repo
}

// List returns all catalog items in seed order.
func (r *InMemoryCatalogRepository) List(_ context.Context) ([]model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CatalogItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID returns the catalog item with the given ID.
func (r *InMemoryCatalogRepository) GetByID(_ context.Context, id string) (*model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrCatalogItemNotFound
}

// ReplaceAll swaps the whole catalog for the given items.
func (r *InMemoryCatalogRepository) ReplaceAll(_ context.Context, items []model.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]model.CatalogItem, len(items))
	copy(r.items, items)
	return nil
}
