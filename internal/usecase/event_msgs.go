package usecase

// Published to the order.events exchange after an order is persisted.
type OrderCreatedMsg struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	TotalCents int64  `json:"totalCents"`
	Currency   string `json:"currency"`
}

// Published whenever an order moves through its state machine.
type OrderStatusChangedMsg struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// FulfillmentUpdateMsg arrives on Kafka from the fulfillment backend and is
// mapped onto an order status transition.
type FulfillmentUpdateMsg struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // PROCESSING | COMPLETED | CANCELLED
}
