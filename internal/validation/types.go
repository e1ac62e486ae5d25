package validation

// OrderItemRequest is a single requested line.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest is the payload for POST /v1/orders. The customer is
// the authenticated caller; it is not part of the payload.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}
