package service

import (
	"errors"
	"strings"
	"time"

	"github.com/doughdesk/storefront-service/internal/domain/model"
)

// Step identifies a wizard step.
type Step int

// Wizard steps in order.
const (
	StepCustomerInfo  Step = 1
	StepItemSelection Step = 2
	StepReview        Step = 3
)

// Order draft field names accepted by SetField. They match the JSON names of
// model.OrderDraft.
const (
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldAddress         = "address"
	FieldDeliveryDate    = "delivery_date"
	FieldDeliveryTime    = "delivery_time"
	FieldPaymentMethod   = "payment_method"
	FieldSpecialRequests = "special_requests"
)

// deliveryDateLayout is the wire format for delivery dates.
const deliveryDateLayout = "2006-01-02"

// Validation messages surfaced in the wizard's error map.
const (
	msgNameRequired  = "Name is required"
	msgPhoneRequired = "Phone number is required"
	msgAddrRequired  = "Address is required"
	msgItemsRequired = "Please select at least one item"
)

var (
	// ErrItemNotFound is returned when an operation references an unknown
	// custom order item.
	ErrItemNotFound = errors.New("custom order item not found")
	// ErrInvalidVariant is returned when a variant is not in the item's
	// option set.
	ErrInvalidVariant = errors.New("variant is not offered for this item")
	// ErrUnknownField is returned by SetField for an unrecognized field name.
	ErrUnknownField = errors.New("unknown order field")
	// ErrInvalidFieldValue is returned by SetField when the value violates
	// the field's constraints (enum membership, date format or range).
	ErrInvalidFieldValue = errors.New("invalid value for order field")
	// ErrOrderCompleted is returned when a mutating operation other than
	// Reset is attempted after submission.
	ErrOrderCompleted = errors.New("order has already been submitted")
)

// Wizard drives the 3-step custom order intake: customer info, item
// selection, review and payment. It owns the order draft and the validation
// error map and enforces the step gating rules.
//
// Wizard is not safe for concurrent use; the owning session serializes
// access.
type Wizard struct {
	now       func() time.Time
	step      Step
	completed bool
	draft     model.OrderDraft
	errors    map[string]string
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithClock injects the time source used to derive the default delivery
// date. Used by tests.
func WithClock(now func() time.Time) WizardOption {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWizard creates a wizard at step 1 with a fresh default draft.
func NewWizard(opts ...WizardOption) *Wizard {
	w := &Wizard{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	return w
}

// reset reinitializes the wizard to step 1 with re-derived defaults: delivery
// date one day ahead, the midday slot, card payment, nothing selected and
// every item back on its first variant.
func (w *Wizard) reset() {
	items := model.DefaultCustomOrderItems()
	for i := range items {
		items[i].SelectedOption = items[i].Options[0]
	}
	w.step = StepCustomerInfo
	w.completed = false
	w.errors = make(map[string]string)
	w.draft = model.OrderDraft{
		DeliveryDate:  w.now().AddDate(0, 0, 1).Format(deliveryDateLayout),
		DeliveryTime:  model.DefaultDeliveryTime,
		PaymentMethod: model.PaymentCard,
		Items:         items,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Completed reports whether the order has been submitted.
func (w *Wizard) Completed() bool {
	return w.completed
}

// Draft returns a copy of the current order draft.
func (w *Wizard) Draft() model.OrderDraft {
	draft := w.draft
	draft.Items = make([]model.CustomOrderItem, len(w.draft.Items))
	copy(draft.Items, w.draft.Items)
	return draft
}

// Errors returns a copy of the validation errors from the most recent
// validation attempt.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Quote returns the running price quote for the current selection.
func (w *Wizard) Quote() model.OrderQuote {
	return QuoteCustomOrder(len(w.draft.SelectedItems()))
}

// SetField overwrites a single draft field. A successful set optimistically
// clears that field's validation error and only that one; the rest of the
// error map is untouched until the next validation attempt. Enumerated
// fields and the delivery date are checked here and rejected with
// ErrInvalidFieldValue, leaving draft and errors unchanged.
func (w *Wizard) SetField(field, value string) error {
	if w.completed {
		return ErrOrderCompleted
	}
	switch field {
	case FieldName:
		w.draft.Name = value
	case FieldPhone:
		w.draft.Phone = value
	case FieldAddress:
		w.draft.Address = value
	case FieldSpecialRequests:
		w.draft.SpecialRequests = value
	case FieldDeliveryDate:
		if !w.validDeliveryDate(value) {
			return ErrInvalidFieldValue
		}
		w.draft.DeliveryDate = value
	case FieldDeliveryTime:
		if !contains(model.DeliveryTimeSlots, value) {
			return ErrInvalidFieldValue
		}
		w.draft.DeliveryTime = value
	case FieldPaymentMethod:
		if !contains(model.PaymentMethods, value) {
			return ErrInvalidFieldValue
		}
		w.draft.PaymentMethod = value
	default:
		return ErrUnknownField
	}
	delete(w.errors, field)
	return nil
}

// validDeliveryDate reports whether value parses as a delivery date that is
// today or later.
func (w *Wizard) validDeliveryDate(value string) bool {
	parsed, err := time.Parse(deliveryDateLayout, value)
	if err != nil {
		return false
	}
	now := w.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.Before(today)
}

// ToggleItem flips the selection state of the custom order item with the
// given ID. The chosen variant is never touched, so deselecting and
// reselecting an item keeps its variant. Returns ErrItemNotFound for an
// unknown ID.
func (w *Wizard) ToggleItem(itemID string) error {
	if w.completed {
		return ErrOrderCompleted
	}
	for i := range w.draft.Items {
		if w.draft.Items[i].ID == itemID {
			w.draft.Items[i].Selected = !w.draft.Items[i].Selected
			return nil
		}
	}
	return ErrItemNotFound
}

// SetVariant chooses a variant for the custom order item with the given ID.
// Returns ErrItemNotFound for an unknown ID and ErrInvalidVariant when the
// option is not in the item's variant set; the current variant is kept in
// both cases.
func (w *Wizard) SetVariant(itemID, option string) error {
	if w.completed {
		return ErrOrderCompleted
	}
	for i := range w.draft.Items {
		if w.draft.Items[i].ID == itemID {
			if !w.draft.Items[i].HasOption(option) {
				return ErrInvalidVariant
			}
			w.draft.Items[i].SelectedOption = option
			return nil
		}
	}
	return ErrItemNotFound
}

// Advance attempts to move to the next step. The move out of step 1 is gated
// by customer info validation and the move out of step 2 by item selection
// validation; either attempt replaces the error map wholly with the newly
// computed set. Returns whether the transition was applied. Advance past
// step 3 is not a transition; use Submit.
func (w *Wizard) Advance() bool {
	if w.completed {
		return false
	}
	switch w.step {
	case StepCustomerInfo:
		w.errors = w.validateCustomerInfo()
		if len(w.errors) > 0 {
			return false
		}
		w.step = StepItemSelection
		return true
	case StepItemSelection:
		w.errors = w.validateItems()
		if len(w.errors) > 0 {
			return false
		}
		w.step = StepReview
		return true
	default:
		return false
	}
}

// Retreat moves back one step unconditionally, keeping the draft and any
// displayed errors intact. Returns whether a step change happened.
func (w *Wizard) Retreat() bool {
	if w.completed || w.step == StepCustomerInfo {
		return false
	}
	w.step--
	return true
}

// Submit finalizes the order at step 3. Item selection is re-validated;
// customer info is not re-checked at this point. On success the wizard is
// marked completed and the draft is frozen. Returns whether submission
// succeeded.
func (w *Wizard) Submit() bool {
	if w.completed || w.step != StepReview {
		return false
	}
	w.errors = w.validateItems()
	if len(w.errors) > 0 {
		return false
	}
	w.completed = true
	return true
}

// Reset discards the order and starts over at step 1 with fresh defaults.
func (w *Wizard) Reset() {
	w.reset()
}

// validateCustomerInfo checks the step 1 fields. Whitespace-only values
// count as empty.
func (w *Wizard) validateCustomerInfo() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(w.draft.Name) == "" {
		errs[FieldName] = msgNameRequired
	}
	if strings.TrimSpace(w.draft.Phone) == "" {
		errs[FieldPhone] = msgPhoneRequired
	}
	if strings.TrimSpace(w.draft.Address) == "" {
		errs[FieldAddress] = msgAddrRequired
	}
	return errs
}

// validateItems checks that at least one item is selected.
func (w *Wizard) validateItems() map[string]string {
	errs := make(map[string]string)
	if len(w.draft.SelectedItems()) == 0 {
		errs["items"] = msgItemsRequired
	}
	return errs
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
