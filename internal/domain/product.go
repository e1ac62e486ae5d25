package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Product struct {
	ID    ProductID
	Name  string
	Price Money
	Stock int
}

func NewProduct(id ProductID, name string, price Money, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("product name must not be empty")
	}
	if stock < 0 {
		return nil, fmt.Errorf("initial stock must not be negative, got %d", stock)
	}
	return &Product{ID: id, Name: name, Price: price, Stock: stock}, nil
}

// DecreaseStock reduces stock by quantity. It fails without touching stock
// when the requested quantity exceeds what is available.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity > p.Stock {
		return fmt.Errorf("%w: requested %d, have %d", ErrInsufficientStock, quantity, p.Stock)
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock adds quantity to stock unconditionally. There is no upper
// bound and no negative-quantity guard; callers own the input.
func (p *Product) IncreaseStock(quantity int) {
	p.Stock += quantity
}
