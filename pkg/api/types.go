package api

// OrderItemRequest is one line item in a create-order request.
type OrderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Units       int     `json:"units"`
	UnitPrice   float64 `json:"unitPrice"`
	Discount    float64 `json:"discount"`
}

// CreateOrderRequest is the expected body for a POST /orders request.
type CreateOrderRequest struct {
	RequestID string             `json:"requestId"`
	Items     []OrderItemRequest `json:"items"`
}

// OrderItemResponse is the API representation of a line item.
type OrderItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Units       int     `json:"units"`
	UnitPrice   float64 `json:"unitPrice"`
	Discount    float64 `json:"discount"`
}

// OrderResponse is the API representation of a single order.
type OrderResponse struct {
	OrderNumber string              `json:"orderNumber"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	TotalUnits  int                 `json:"totalUnits"`
	TotalValue  float64             `json:"totalValue"`
	CreatedAt   string              `json:"createdAt"`
	PaidAt      string              `json:"paidAt,omitempty"`
}

// MarkOrderPaidRequest is the expected body for a pay request.
type MarkOrderPaidRequest struct {
	RequestID string `json:"requestId"`
}

// MarkOrderPaidResponse reports whether the order was transitioned to paid.
type MarkOrderPaidResponse struct {
	OrderNumber string `json:"orderNumber"`
	Paid        bool   `json:"paid"`
}
