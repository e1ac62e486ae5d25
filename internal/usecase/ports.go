package usecase

import (
	"context"

	"github.com/hqv2816/storefront-api/internal/domain"
)

// ProductRepo is the persistence port for products. Implementations return
// domain.ErrProductNotFound for missing ids; everything else is "whatever
// the backing store returns".
type ProductRepo interface {
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	Save(ctx context.Context, o *domain.Order) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	Create(ctx context.Context, u *domain.User, password domain.Password) error
}

// AuthService checks credentials and issues bearer tokens. Looking the user
// up is NOT its job; use cases resolve the user first so an unknown email
// never reaches the credential check.
type AuthService interface {
	Verify(ctx context.Context, user *domain.User, password domain.Password) (token string, err error)
	Identify(ctx context.Context, token string) (*domain.User, error)
}

// OrderEvents publishes order lifecycle events. Publication is
// fire-and-forget: a broker failure never fails the business operation.
type OrderEvents interface {
	OrderCreated(ctx context.Context, msg OrderCreatedMsg) error
	OrderStatusChanged(ctx context.Context, msg OrderStatusChangedMsg) error
}
