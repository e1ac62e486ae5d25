package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type OrderItemRequest struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID string
	Items      []OrderItemRequest
}

// CreateOrder places an order: for each requested line it loads the
// product, decrements stock, persists the product, and snapshots the
// current price into the order. The order itself is saved only after every
// line succeeded.
//
// There is no rollback across lines: if line N fails, the stock decrements
// of lines 1..N-1 stay committed while the order is never persisted. The
// storefront has always behaved this way; fixing it needs a compensating
// transaction and product sign-off, not a quiet code change.
type CreateOrder struct {
	products ProductRepo
	orders   OrderRepo
	events   OrderEvents
}

func NewCreateOrder(products ProductRepo, orders OrderRepo, events OrderEvents) *CreateOrder {
	return &CreateOrder{products: products, orders: orders, events: events}
}

func (uc *CreateOrder) Execute(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	order := domain.NewOrder(uuid.NewString(), in.CustomerID)

	for _, req := range in.Items {
		id, err := domain.NewProductID(req.ProductID)
		if err != nil {
			return nil, err
		}
		product, err := uc.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := product.DecreaseStock(req.Quantity); err != nil {
			return nil, err
		}
		if err := uc.products.Save(ctx, product); err != nil {
			return nil, err
		}
		if err := order.AddItem(product.ID, req.Quantity, product.Price); err != nil {
			return nil, err
		}
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	if uc.events != nil {
		_ = uc.events.OrderCreated(ctx, OrderCreatedMsg{
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			TotalCents: order.Total.Cents(),
			Currency:   order.Total.Currency(),
		})
	}
	return order, nil
}
