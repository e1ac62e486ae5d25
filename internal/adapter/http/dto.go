package http

import (
	"time"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type moneyResp struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

func toMoneyResp(m domain.Money) moneyResp {
	return moneyResp{Cents: m.Cents(), Currency: m.Currency()}
}

type productResp struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Price moneyResp `json:"price"`
	Stock int       `json:"stock"`
}

func toProductResp(p *domain.Product) productResp {
	return productResp{
		ID:    p.ID.String(),
		Name:  p.Name,
		Price: toMoneyResp(p.Price),
		Stock: p.Stock,
	}
}

type orderItemResp struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     moneyResp `json:"price"`
}

type orderResp struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Status      string          `json:"status"`
	Items       []orderItemResp `json:"items"`
	TotalAmount moneyResp       `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toOrderResp(o *domain.Order) orderResp {
	items := make([]orderItemResp, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResp{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
			Price:     toMoneyResp(it.Price),
		})
	}
	return orderResp{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		Items:       items,
		TotalAmount: toMoneyResp(o.Total),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResp(u *domain.User) userResp {
	return userResp{
		ID:    u.ID,
		Email: u.Email.String(),
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
