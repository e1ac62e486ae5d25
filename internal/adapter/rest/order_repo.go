package rest

import (
	"context"
	"net/http"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type OrderRepo struct{ c *Client }

func NewOrderRepo(c *Client) *OrderRepo { return &OrderRepo{c: c} }

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var dto orderDTO
	err := r.c.do(ctx, http.MethodGet, "/orders/"+id, nil, nil, &dto)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return dto.toDomain()
}

func (r *OrderRepo) FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	var dtos []orderDTO
	if err := r.c.do(ctx, http.MethodGet, "/customers/"+customerID+"/orders", nil, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]*domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	return r.c.do(ctx, http.MethodPut, "/orders/"+o.ID, nil, orderToDTO(o), nil)
}

var _ usecase.OrderRepo = (*OrderRepo)(nil)
