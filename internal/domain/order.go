package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// transitions lists the reachable statuses from each status. COMPLETED and
// CANCELLED are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
}

func canTransition(from, to OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ParseOrderStatus validates a status string coming off the wire or out of
// a store.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// OrderItem is a line in an order. Price is the unit price snapshotted when
// the line was added, not a live reference to the product.
type OrderItem struct {
	ProductID ProductID
	Quantity  int
	Price     Money
}

func (i OrderItem) Subtotal() Money { return i.Price.Mul(i.Quantity) }

type Order struct {
	ID         string
	CustomerID string
	Status     OrderStatus
	Items      []OrderItem
	Total      Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewOrder(id, customerID string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Status:     OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem appends a line item and recomputes the total. Lines can only be
// added while the order is pending, and every line must share one currency.
func (o *Order) AddItem(productID ProductID, quantity int, unitPrice Money) error {
	if o.Status != OrderPending {
		return fmt.Errorf("%w: order is %s", ErrOrderNotEditable, o.Status)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if !o.Total.IsZero() && o.Total.Currency() != unitPrice.Currency() {
		return fmt.Errorf("%w: order is in %s, item is in %s",
			ErrCurrencyMismatch, o.Total.Currency(), unitPrice.Currency())
	}
	o.Items = append(o.Items, OrderItem{ProductID: productID, Quantity: quantity, Price: unitPrice})
	return o.recomputeTotal()
}

// RemoveItem drops the line for productID and recomputes the total.
func (o *Order) RemoveItem(productID ProductID) error {
	if o.Status != OrderPending {
		return fmt.Errorf("%w: order is %s", ErrOrderNotEditable, o.Status)
	}
	kept := o.Items[:0]
	found := false
	for _, it := range o.Items {
		if it.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}
	o.Items = kept
	return o.recomputeTotal()
}

func (o *Order) recomputeTotal() error {
	total := Money{}
	for _, it := range o.Items {
		sum, err := total.Add(it.Subtotal())
		if err != nil {
			return err
		}
		total = sum
	}
	o.Total = total
	o.UpdatedAt = time.Now().UTC()
	return nil
}

// Process moves a pending order into processing.
func (o *Order) Process() error { return o.transition(OrderProcessing) }

// Complete finishes a processing order. Pending or cancelled orders cannot
// be completed.
func (o *Order) Complete() error { return o.transition(OrderCompleted) }

// Cancel aborts a pending or processing order. Completed orders cannot be
// cancelled.
func (o *Order) Cancel() error { return o.transition(OrderCancelled) }

func (o *Order) transition(to OrderStatus) error {
	if !canTransition(o.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return nil
}
