// Package memory holds map-backed implementations of the repository ports.
// They back the test suites and the "memory" store driver used for local
// development without MySQL or an upstream backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type ProductRepo struct {
	mu       sync.RWMutex
	products map[domain.ProductID]domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{products: map[domain.ProductID]domain.Product{}}
}

func (r *ProductRepo) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: map[string]domain.Order{}}
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *OrderRepo) FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Order
	for _, o := range r.orders {
		if o.CustomerID != customerID {
			continue
		}
		cp := o
		cp.Items = append([]domain.OrderItem(nil), o.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Items = append([]domain.OrderItem(nil), o.Items...)
	r.orders[o.ID] = cp
	return nil
}

// Len reports how many orders were persisted.
func (r *OrderRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

type userRecord struct {
	user domain.User
	hash []byte
}

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]userRecord // keyed by id
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[string]userRecord{}}
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := rec.user
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.users {
		if rec.user.Email == email {
			u := rec.user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User, password domain.Password) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(string(password)), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return domain.ErrEmailTaken
	}
	r.users[u.ID] = userRecord{user: *u, hash: hash}
	return nil
}

// PasswordHash implements security.CredentialSource.
func (r *UserRepo) PasswordHash(ctx context.Context, userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.users[userID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return string(rec.hash), nil
}

var (
	_ usecase.ProductRepo = (*ProductRepo)(nil)
	_ usecase.OrderRepo   = (*OrderRepo)(nil)
	_ usecase.UserRepo    = (*UserRepo)(nil)
)
