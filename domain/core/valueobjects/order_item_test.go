package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders-backend/pkg/errors"
)

func TestNewOrderItem(t *testing.T) {
	item, err := NewOrderItem("prod-1", "keyboard", 3, 10, 1)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Units())
	assert.Equal(t, 27.0, item.TotalValue())
}

func TestNewOrderItem_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		units     int
		unitPrice float64
		discount  float64
	}{
		{"missing product id", "", 1, 10, 0},
		{"zero units", "prod-1", 0, 10, 0},
		{"negative units", "prod-1", -2, 10, 0},
		{"negative price", "prod-1", 1, -1, 0},
		{"negative discount", "prod-1", 1, 10, -1},
		{"discount above price", "prod-1", 1, 10, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderItem(tt.productID, "x", tt.units, tt.unitPrice, tt.discount)
			assert.True(t, errors.IsValidation(err))
		})
	}
}
