package service

import (
	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// Custom order pricing is a flat quote, deliberately independent of catalog
// unit prices: every selected item costs the same flat fee and a single
// delivery fee applies to any non-empty order.
const (
	// CustomItemUnitPrice is the flat price per selected custom order item.
	CustomItemUnitPrice = 15.00
	// CustomOrderDeliveryFee is the delivery fee for a non-empty custom order.
	CustomOrderDeliveryFee = 5.00
)

// QuoteCustomOrder derives the price quote for a custom order with the given
// number of selected items. An empty selection quotes zero across the board,
// including the delivery fee.
func QuoteCustomOrder(selectedCount int) model.OrderQuote {
	if selectedCount <= 0 {
		return model.OrderQuote{}
	}
	itemsTotal := float64(selectedCount) * CustomItemUnitPrice
	return model.OrderQuote{
		ItemsTotal:  itemsTotal,
		DeliveryFee: CustomOrderDeliveryFee,
		Total:       itemsTotal + CustomOrderDeliveryFee,
	}
}
