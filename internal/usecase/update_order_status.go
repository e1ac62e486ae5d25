package usecase

import (
	"context"
	"fmt"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type OrderTransition string

const (
	TransitionProcess  OrderTransition = "process"
	TransitionComplete OrderTransition = "complete"
	TransitionCancel   OrderTransition = "cancel"
)

// UpdateOrderStatus applies one state-machine transition to an order. Both
// the HTTP surface and the fulfillment consumer go through here, so the
// domain guards are enforced on every path.
type UpdateOrderStatus struct {
	orders OrderRepo
	events OrderEvents
}

func NewUpdateOrderStatus(orders OrderRepo, events OrderEvents) *UpdateOrderStatus {
	return &UpdateOrderStatus{orders: orders, events: events}
}

func (uc *UpdateOrderStatus) Execute(ctx context.Context, orderID string, t OrderTransition) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch t {
	case TransitionProcess:
		err = order.Process()
	case TransitionComplete:
		err = order.Complete()
	case TransitionCancel:
		err = order.Cancel()
	default:
		err = fmt.Errorf("unknown order transition %q", t)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if uc.events != nil {
		_ = uc.events.OrderStatusChanged(ctx, OrderStatusChangedMsg{
			OrderID: order.ID,
			Status:  string(order.Status),
		})
	}
	return order, nil
}
