package model

// Payment methods accepted at checkout.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// DefaultDeliveryTime is the delivery slot a fresh order draft starts with.
const DefaultDeliveryTime = "12:00"

// DeliveryTimeSlots lists the delivery slots offered by the storefront,
// on the hour from opening to last delivery.
var DeliveryTimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{PaymentCard, PaymentCash}

// CustomOrderItem is one of the fixed set of made-to-order product types
// offered only through the custom order wizard. Identity and the variant set
// are fixed at initialization; only Selected and SelectedOption change.
//
// @Description Made-to-order product type with selectable variants
type CustomOrderItem struct {
	// ID is the unique identifier of the item
	ID string `json:"id" example:"birthday-cake"`
	// Name is the display name
	Name string `json:"name" example:"Birthday Cake"`
	// Options is the fixed, non-empty set of selectable variants
	Options []string `json:"options"`
	// Selected reports whether the item is part of the order
	Selected bool `json:"selected"`
	// SelectedOption is the currently chosen variant, always a member of
	// Options; defaults to the first variant
	SelectedOption string `json:"selected_option" example:"Chocolate"`
}

// HasOption reports whether option is a member of the item's variant set.
func (i CustomOrderItem) HasOption(option string) bool {
	for _, o := range i.Options {
		if o == option {
			return true
		}
	}
	return false
}

// OrderDraft is the mutable, in-progress custom order record owned by the
// wizard prior to completion.
//
// @Description In-progress custom order draft
type OrderDraft struct {
	// Name is the customer's full name
	Name string `json:"name"`
	// Phone is the customer's phone number
	Phone string `json:"phone"`
	// Address is the free-text delivery address
	Address string `json:"address"`
	// DeliveryDate is the requested delivery date (format 2006-01-02,
	// today or later)
	DeliveryDate string `json:"delivery_date" example:"2025-02-01"`
	// DeliveryTime is one of DeliveryTimeSlots
	DeliveryTime string `json:"delivery_time" example:"12:00"`
	// PaymentMethod is one of PaymentMethods
	PaymentMethod string `json:"payment_method" example:"card"`
	// SpecialRequests is a free-text note for the bakery
	SpecialRequests string `json:"special_requests,omitempty"`
	// Items is the fixed, ordered set of custom order items
	Items []CustomOrderItem `json:"items"`
}

// SelectedItems returns the currently selected custom order items,
// preserving order.
func (d OrderDraft) SelectedItems() []CustomOrderItem {
	selected := make([]CustomOrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		if item.Selected {
			selected = append(selected, item)
		}
	}
	return selected
}

// OrderQuote is the derived price quote for a custom order. The custom order
// pricing is a flat per-item fee plus a delivery fee and is deliberately
// independent of catalog unit prices.
type OrderQuote struct {
	ItemsTotal  float64 `json:"items_total"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// DefaultCustomOrderItems returns the fixed, hand-authored set of
// made-to-order items offered through the wizard. Every wizard session
// starts from a fresh copy of this list.
func DefaultCustomOrderItems() []CustomOrderItem {
	return []CustomOrderItem{
		{ID: "birthday-cake", Name: "Birthday Cake", Options: []string{"Chocolate", "Vanilla", "Red Velvet"}},
		{ID: "cupcakes-6", Name: "Cupcakes (6pcs)", Options: []string{"Assorted", "Chocolate", "Vanilla"}},
		{ID: "cookies-12", Name: "Cookies (12pcs)", Options: []string{"Chocolate Chip", "Oatmeal", "Sugar"}},
		{ID: "bread-loaf", Name: "Bread Loaf", Options: []string{"White", "Whole Wheat", "Sourdough"}},
		{ID: "croissants-4", Name: "Croissants (4pcs)", Options: []string{"Plain", "Chocolate", "Almond"}},
	}
}
