package rest

import (
	"time"

	"github.com/hqv2816/storefront-api/internal/domain"
)

// Wire shapes of the upstream backend.

type moneyDTO struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

func (d moneyDTO) toDomain() (domain.Money, error) {
	if d.Cents == 0 && d.Currency == "" {
		return domain.Money{}, nil
	}
	return domain.NewMoney(d.Cents, d.Currency)
}

func moneyToDTO(m domain.Money) moneyDTO {
	return moneyDTO{Cents: m.Cents(), Currency: m.Currency()}
}

type productDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price moneyDTO `json:"price"`
	Stock int      `json:"stock"`
}

func (d productDTO) toDomain() (*domain.Product, error) {
	id, err := domain.NewProductID(d.ID)
	if err != nil {
		return nil, err
	}
	price, err := d.Price.toDomain()
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(id, d.Name, price, d.Stock)
}

func productToDTO(p *domain.Product) productDTO {
	return productDTO{
		ID:    p.ID.String(),
		Name:  p.Name,
		Price: moneyToDTO(p.Price),
		Stock: p.Stock,
	}
}

type orderItemDTO struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     moneyDTO `json:"price"`
}

type orderDTO struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customerId"`
	Status     string         `json:"status"`
	Items      []orderItemDTO `json:"items"`
	Total      moneyDTO       `json:"totalAmount"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (d orderDTO) toDomain() (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(d.Status)
	if err != nil {
		return nil, err
	}
	total, err := d.Total.toDomain()
	if err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		price, err := it.Price.toDomain()
		if err != nil {
			return nil, err
		}
		pid, err := domain.NewProductID(it.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{ProductID: pid, Quantity: it.Quantity, Price: price})
	}
	return &domain.Order{
		ID:         d.ID,
		CustomerID: d.CustomerID,
		Status:     status,
		Items:      items,
		Total:      total,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func orderToDTO(o *domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			Price:     moneyToDTO(it.Price),
		})
	}
	return orderDTO{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Items:      items,
		Total:      moneyToDTO(o.Total),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (d userDTO) toDomain() (*domain.User, error) {
	email, err := domain.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(d.Role)
	if err != nil {
		return nil, err
	}
	return domain.NewUser(d.ID, email, d.Name, role), nil
}
