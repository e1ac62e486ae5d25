package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

// FulfillmentHandler maps status events from the fulfillment backend onto
// order state-machine transitions. Transitions the state machine rejects
// (e.g. a COMPLETED event for a cancelled order) are dropped rather than
// retried: redelivery can never make them valid.
type FulfillmentHandler struct {
	updater *usecase.UpdateOrderStatus
}

func NewFulfillmentHandler(updater *usecase.UpdateOrderStatus) *FulfillmentHandler {
	return &FulfillmentHandler{updater: updater}
}

func (h *FulfillmentHandler) Handle(ctx context.Context, ev usecase.FulfillmentUpdateMsg) error {
	var t usecase.OrderTransition
	switch ev.Status {
	case string(domain.OrderProcessing):
		t = usecase.TransitionProcess
	case string(domain.OrderCompleted):
		t = usecase.TransitionComplete
	case string(domain.OrderCancelled):
		t = usecase.TransitionCancel
	default:
		return fmt.Errorf("unknown fulfillment status %q for order %s", ev.Status, ev.OrderID)
	}

	_, err := h.updater.Execute(ctx, ev.OrderID, t)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil
	}
	return err
}
