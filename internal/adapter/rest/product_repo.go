package rest

import (
	"context"
	"net/http"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type ProductRepo struct{ c *Client }

func NewProductRepo(c *Client) *ProductRepo { return &ProductRepo{c: c} }

func (r *ProductRepo) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var dto productDTO
	err := r.c.do(ctx, http.MethodGet, "/products/"+id.String(), nil, nil, &dto)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return dto.toDomain()
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	var dtos []productDTO
	if err := r.c.do(ctx, http.MethodGet, "/products", nil, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.c.do(ctx, http.MethodPut, "/products/"+p.ID.String(), nil, productToDTO(p), nil)
}

var _ usecase.ProductRepo = (*ProductRepo)(nil)
