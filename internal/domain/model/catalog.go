// Package model defines the core domain entities for the storefront service.
package model

// CatalogItem represents a single sellable product in the storefront catalog.
// Catalog items are supplied at startup and are immutable for the lifetime
// of a session.
//
// @Description Read-only product record from the storefront catalog
// @Example {"id": "sourdough-bread", "name": "Sourdough Bread", "category": "Bread", "price": 6.99, "available_quantity": 15}
type CatalogItem struct {
	// ID is the unique, stable identifier of the item
	ID string `json:"id" example:"sourdough-bread"`
	// Name is the display name of the item
	Name string `json:"name" example:"Sourdough Bread"`
	// Description is a short marketing description
	Description string `json:"description,omitempty" example:"Artisanal sourdough with a crispy crust and chewy interior"`
	// Category is the catalog category tag
	Category string `json:"category" example:"Bread"`
	// Price is the unit price (non-negative)
	Price float64 `json:"price" example:"6.99"`
	// ImageURL points at the product photo served by the presentation layer
	ImageURL string `json:"image_url,omitempty"`
	// AvailableQuantity is the advertised stock count (informational only;
	// the cart does not enforce it)
	AvailableQuantity int `json:"available_quantity" example:"15"`
}

// DefaultCatalog returns the built-in bakery catalog used to seed the
// catalog store when no catalog has been configured yet.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{
			ID:                "sourdough-bread",
			Name:              "Sourdough Bread",
			Description:       "Artisanal sourdough with a crispy crust and chewy interior",
			Category:          "Bread",
			Price:             6.99,
			AvailableQuantity: 15,
		},
		{
			ID:                "chocolate-croissant",
			Name:              "Chocolate Croissant",
			Description:       "Buttery, flaky pastry filled with rich chocolate",
			Category:          "Pastries",
			Price:             3.99,
			AvailableQuantity: 20,
		},
		{
			ID:                "blueberry-muffin",
			Name:              "Blueberry Muffin",
			Description:       "Moist muffin packed with fresh blueberries",
			Category:          "Muffins",
			Price:             2.99,
			AvailableQuantity: 12,
		},
		{
			ID:                "cinnamon-roll",
			Name:              "Cinnamon Roll",
			Description:       "Soft, gooey roll with cinnamon swirl and cream cheese frosting",
			Category:          "Pastries",
			Price:             4.49,
			AvailableQuantity: 8,
		},
		{
			ID:                "baguette",
			Name:              "Baguette",
			Description:       "Traditional French bread with a crispy exterior",
			Category:          "Bread",
			Price:             3.49,
			AvailableQuantity: 10,
		},
		{
			ID:                "red-velvet-cupcake",
			Name:              "Red Velvet Cupcake",
			Description:       "Classic red velvet with cream cheese frosting",
			Category:          "Cakes",
			Price:             3.99,
			AvailableQuantity: 15,
		},
	}
}
