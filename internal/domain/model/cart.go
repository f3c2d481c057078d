package model

// CartLine pairs a catalog item with the quantity currently in the cart.
// A line with quantity 0 never exists: the ledger removes it instead.
//
// @Description A catalog item and its quantity inside a cart
// @Example {"item": {"id": "chocolate-croissant"}, "quantity": 2}
type CartLine struct {
	// Item is the catalog item referenced by this line
	Item CatalogItem `json:"item"`
	// Quantity is the number of units in the cart (always >= 1)
	Quantity int `json:"quantity" example:"2"`
}

// LineTotal returns the catalog price of this line (unit price x quantity).
func (l CartLine) LineTotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// CartTotals carries the derived monetary totals of a cart. Values are kept
// as exact floats; rounding to two decimals happens only at the presentation
// boundary.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
