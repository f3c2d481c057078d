// Package repository provides data access for the storefront catalog.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// ErrCatalogItemNotFound is returned when no catalog item has the given ID.
var ErrCatalogItemNotFound = errors.New("catalog item not found")

// catalogDocument represents a catalog item document in MongoDB.
// The item slug doubles as the document ID; Position preserves the
// hand-authored display order.
type catalogDocument struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	Description       string    `bson:"description,omitempty"`
	Category          string    `bson:"category"`
	Price             float64   `bson:"price"`
	ImageURL          string    `bson:"image_url,omitempty"`
	AvailableQuantity int       `bson:"available_quantity"`
	Position          int       `bson:"position"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

// CatalogRepository provides methods for catalog operations backed by MongoDB.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Catalog,
	}
}

// List returns all catalog items ordered by position.
func (r *CatalogRepository) List(ctx context.Context) ([]model.CatalogItem, error) {
	opts := options.Find().SetSort(bson.M{"position": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []catalogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.CatalogItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.toModel()
	}
	return items, nil
}

// GetByID returns the catalog item with the given ID.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	var doc catalogDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCatalogItemNotFound
	}
	if err != nil {
		return nil, err
	}
	item := doc.toModel()
	return &item, nil
}

// ReplaceAll swaps the whole catalog for the given items, preserving their
// order as the display order.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, items []model.CatalogItem) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = catalogDocument{
			ID:                item.ID,
			Name:              item.Name,
			Description:       item.Description,
			Category:          item.Category,
			Price:             item.Price,
			ImageURL:          item.ImageURL,
			AvailableQuantity: item.AvailableQuantity,
			Position:          i,
			UpdatedAt:         now,
		}
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Count returns the number of catalog items.
func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// toModel converts a document to the domain model.
func (d catalogDocument) toModel() model.CatalogItem {
	return model.CatalogItem{
		ID:                d.ID,
		Name:              d.Name,
		Description:       d.Description,
		Category:          d.Category,
		Price:             d.Price,
		ImageURL:          d.ImageURL,
		AvailableQuantity: d.AvailableQuantity,
	}
}
