// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddCartItemRequest represents the JSON request body for adding a catalog
// item to the cart.
//
// The ItemID field is required and must reference a catalog item.
// Validation is performed using gin's binding tags.
//
// @Description Request to add one unit of a catalog item to the cart
// @Example {"item_id": "chocolate-croissant"}
type AddCartItemRequest struct {
	// ItemID is the catalog identifier of the item to add.
	ItemID string `json:"item_id" binding:"required" example:"chocolate-croissant"`
} // @name AddCartItemRequest

// SetOrderFieldRequest represents the JSON request body for updating a single
// field of the order draft.
//
// Field names the known draft fields: name, phone, address, delivery_date,
// delivery_time, payment_method, special_requests.
//
// @Description Request to overwrite one order draft field
// @Example {"field": "name", "value": "Jane Dough"}
type SetOrderFieldRequest struct {
	// Field is the draft field to set.
	Field string `json:"field" binding:"required" example:"name"`
	// Value is the new value for the field.
	Value string `json:"value" example:"Jane Dough"`
} // @name SetOrderFieldRequest

// SetVariantRequest represents the JSON request body for choosing a variant
// of a custom order item.
//
// @Description Request to choose a variant for a custom order item
// @Example {"option": "Red Velvet"}
type SetVariantRequest struct {
	// Option is the variant to select; must be one of the item's options.
	Option string `json:"option" binding:"required" example:"Red Velvet"`
} // @name SetVariantRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingItemID is returned when item_id is empty.
	ErrMissingItemID = &ValidationError{
		Field:   "item_id",
		Message: "must not be empty",
	}
	// ErrMissingField is returned when field is empty.
	ErrMissingField = &ValidationError{
		Field:   "field",
		Message: "must not be empty",
	}
	// ErrMissingOption is returned when option is empty.
	ErrMissingOption = &ValidationError{
		Field:   "option",
		Message: "must not be empty",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AddCartItemRequest) Validate() error {
	if r.ItemID == "" {
		return ErrMissingItemID
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *SetOrderFieldRequest) Validate() error {
	if r.Field == "" {
		return ErrMissingField
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *SetVariantRequest) Validate() error {
	if r.Option == "" {
		return ErrMissingOption
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
