package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomOrderItem_HasOption(t *testing.T) {
	item := CustomOrderItem{
		ID:      "birthday-cake",
		Name:    "Birthday Cake",
		Options: []string{"Chocolate", "Vanilla", "Red Velvet"},
	}

	tests := []struct {
		name     string
		option   string
		expected bool
	}{
		{name: "first option", option: "Chocolate", expected: true},
		{name: "last option", option: "Red Velvet", expected: true},
		{name: "unknown option", option: "Strawberry", expected: false},
		{name: "case sensitive", option: "chocolate", expected: false},
		{name: "empty option", option: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, item.HasOption(tt.option))
		})
	}
}

func TestOrderDraft_SelectedItems(t *testing.T) {
	tests := []struct {
		name     string
		draft    OrderDraft
		expected []string
	}{
		{
			name:     "nothing selected",
			draft:    OrderDraft{Items: DefaultCustomOrderItems()},
			expected: []string{},
		},
		{
			name: "some selected preserves order",
			draft: OrderDraft{Items: []CustomOrderItem{
				{ID: "birthday-cake", Selected: true},
				{ID: "cupcakes-6", Selected: false},
				{ID: "cookies-12", Selected: true},
			}},
			expected: []string{"birthday-cake", "cookies-12"},
		},
		{
			name: "all selected",
			draft: OrderDraft{Items: []CustomOrderItem{
				{ID: "bread-loaf", Selected: true},
				{ID: "croissants-4", Selected: true},
			}},
			expected: []string{"bread-loaf", "croissants-4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := tt.draft.SelectedItems()
			ids := make([]string, 0, len(selected))
			for _, item := range selected {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestDefaultCustomOrderItems(t *testing.T) {
	items := DefaultCustomOrderItems()

	assert.Len(t, items, 5)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Options, "item %s has no variants", item.ID)
		assert.False(t, item.Selected, "item %s starts selected", item.ID)
		assert.Empty(t, item.SelectedOption, "selected option is derived at wizard init")
	}

	assert.Equal(t, "birthday-cake", items[0].ID)
	assert.Equal(t, []string{"Chocolate", "Vanilla", "Red Velvet"}, items[0].Options)
}

func TestDeliveryTimeSlots(t *testing.T) {
	assert.Len(t, DeliveryTimeSlots, 9)
	assert.Equal(t, "09:00", DeliveryTimeSlots[0])
	assert.Equal(t, "17:00", DeliveryTimeSlots[len(DeliveryTimeSlots)-1])
	assert.Contains(t, DeliveryTimeSlots, DefaultDeliveryTime)
}

func TestPaymentMethods(t *testing.T) {
	assert.Equal(t, []string{PaymentCard, PaymentCash}, PaymentMethods)
}
