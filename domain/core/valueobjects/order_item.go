package valueobjects

import (
	"orders-backend/pkg/errors"
)

// OrderItem is an immutable line item on an order.
type OrderItem struct {
	productID   string
	productName string
	units       int
	unitPrice   float64
	discount    float64
}

// NewOrderItem creates a validated order item.
func NewOrderItem(productID, productName string, units int, unitPrice, discount float64) (OrderItem, error) {
	if productID == "" {
		return OrderItem{}, errors.NewValidation("product id is required")
	}
	if units <= 0 {
		return OrderItem{}, errors.NewValidation("units must be greater than zero")
	}
	if unitPrice < 0 {
		return OrderItem{}, errors.NewValidation("unit price cannot be negative")
	}
	if discount < 0 {
		return OrderItem{}, errors.NewValidation("discount cannot be negative")
	}
	if discount > unitPrice {
		return OrderItem{}, errors.NewValidation("discount cannot exceed unit price")
	}

	return OrderItem{
		productID:   productID,
		productName: productName,
		units:       units,
		unitPrice:   unitPrice,
		discount:    discount,
	}, nil
}

// ProductID returns the product identifier.
func (i OrderItem) ProductID() string { return i.productID }

// ProductName returns the product display name.
func (i OrderItem) ProductName() string { return i.productName }

// Units returns the ordered quantity.
func (i OrderItem) Units() int { return i.units }

// UnitPrice returns the price per unit before discount.
func (i OrderItem) UnitPrice() float64 { return i.unitPrice }

// Discount returns the per-unit discount.
func (i OrderItem) Discount() float64 { return i.discount }

// TotalValue returns (unitPrice - discount) * units.
func (i OrderItem) TotalValue() float64 {
	return (i.unitPrice - i.discount) * float64(i.units)
}
