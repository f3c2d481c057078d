// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog repository operations.
type CatalogRepositoryInterface interface {
	// List returns all catalog items in their stable display order.
	List(ctx context.Context) ([]model.CatalogItem, error)
	// GetByID returns the item with the given ID, or ErrCatalogItemNotFound.
	GetByID(ctx context.Context, id string) (*model.CatalogItem, error)
	// ReplaceAll swaps the whole catalog for the given items.
	ReplaceAll(ctx context.Context, items []model.CatalogItem) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
