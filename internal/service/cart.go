package service

import (
	"errors"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// TaxRate is the flat tax rate applied to the cart subtotal.
const TaxRate = 0.10

// ErrLineNotFound is returned when a cart operation references an item that
// has no line in the cart.
var ErrLineNotFound = errors.New("item is not in the cart")

// Cart is the per-session cart ledger. It maps catalog item IDs to lines and
// preserves the order in which items first entered the cart. A line always
// has quantity >= 1; removing the last unit deletes the line.
//
// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lines map[string]*model.CartLine
	order []string
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make(map[string]*model.CartLine),
	}
}

// AddItem adds one unit of the given catalog item to the cart. If a line for
// the item already exists its quantity is incremented, otherwise a new line
// is appended. AddItem always succeeds; advertised stock is informational and
// not enforced here.
func (c *Cart) AddItem(item model.CatalogItem) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &model.CartLine{Item: item, Quantity: 1}
	c.order = append(c.order, item.ID)
}

// RemoveItem removes one unit of the item with the given ID. The line is
// deleted when its quantity reaches zero. Returns ErrLineNotFound when the
// cart has no line for the item; the cart is left untouched in that case.
func (c *Cart) RemoveItem(itemID string) error {
	line, ok := c.lines[itemID]
	if !ok {
		return ErrLineNotFound
	}
	if line.Quantity > 1 {
		line.Quantity--
		return nil
	}
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the exact sum of line totals. No rounding is applied;
// presentation formatting happens at the DTO boundary.
func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, line := range c.lines {
		subtotal += line.LineTotal()
	}
	return subtotal
}

// Tax returns the exact tax amount for the current subtotal.
func (c *Cart) Tax() float64 {
	return c.Subtotal() * TaxRate
}

// Total returns the exact subtotal plus tax.
func (c *Cart) Total() float64 {
	subtotal := c.Subtotal()
	return subtotal + subtotal*TaxRate
}

// Totals returns the derived totals in one pass.
func (c *Cart) Totals() model.CartTotals {
	subtotal := c.Subtotal()
	return model.CartTotals{
		Subtotal: subtotal,
		Tax:      subtotal * TaxRate,
		Total:    subtotal + subtotal*TaxRate,
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}
