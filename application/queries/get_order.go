// Package queries defines the read-side operations of the order service.
package queries

// GetOrderQuery requests a single order by its number.
type GetOrderQuery struct {
	OrderNumber string
}
