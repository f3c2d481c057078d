package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLine_LineTotal(t *testing.T) {
	tests := []struct {
		name     string
		line     CartLine
		expected float64
	}{
		{
			name:     "single unit",
			line:     CartLine{Item: CatalogItem{ID: "sourdough-bread", Price: 6.99}, Quantity: 1},
			expected: 6.99,
		},
		{
			name:     "multiple units",
			line:     CartLine{Item: CatalogItem{ID: "chocolate-croissant", Price: 3.99}, Quantity: 3},
			expected: 11.97,
		},
		{
			name:     "free item",
			line:     CartLine{Item: CatalogItem{ID: "sample", Price: 0}, Quantity: 5},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.line.LineTotal(), 1e-9)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Len(t, catalog, 6)

	seen := make(map[string]bool)
	for _, item := range catalog {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Category)
		assert.Greater(t, item.Price, 0.0)
		assert.Greater(t, item.AvailableQuantity, 0)
		assert.False(t, seen[item.ID], "duplicate catalog id %s", item.ID)
		seen[item.ID] = true
	}

	assert.Equal(t, "sourdough-bread", catalog[0].ID)
	assert.InDelta(t, 6.99, catalog[0].Price, 1e-9)
}
