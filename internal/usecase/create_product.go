package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type CreateProductInput struct {
	Name       string
	PriceCents int64
	Currency   string
	Stock      int
}

type CreateProduct struct {
	products ProductRepo
}

func NewCreateProduct(products ProductRepo) *CreateProduct {
	return &CreateProduct{products: products}
}

func (uc *CreateProduct) Execute(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	price, err := domain.NewMoney(in.PriceCents, in.Currency)
	if err != nil {
		return nil, err
	}
	id, err := domain.NewProductID(uuid.NewString())
	if err != nil {
		return nil, err
	}
	product, err := domain.NewProduct(id, in.Name, price, in.Stock)
	if err != nil {
		return nil, err
	}
	if err := uc.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
