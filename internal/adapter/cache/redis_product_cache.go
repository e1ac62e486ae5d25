package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

// CachedProductRepo decorates a ProductRepo with a Redis read-through
// cache on single-product lookups. Cache writes and invalidations are
// best-effort: Redis being down degrades to the inner repo, never to an
// error.
type CachedProductRepo struct {
	inner usecase.ProductRepo
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProductRepo(inner usecase.ProductRepo, rdb *redis.Client, ttl time.Duration) *CachedProductRepo {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedProductRepo{inner: inner, rdb: rdb, ttl: ttl}
}

type productSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Currency   string `json:"currency"`
	Stock      int    `json:"stock"`
}

func cacheKey(id domain.ProductID) string { return "product:" + id.String() }

func (r *CachedProductRepo) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	if raw, err := r.rdb.Get(ctx, cacheKey(id)).Result(); err == nil {
		var snap productSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err == nil {
			if p, err := snap.toDomain(); err == nil {
				return p, nil
			}
		}
		// fall through on any decode problem
	}

	p, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(snapshotOf(p)); err == nil {
		_ = r.rdb.Set(ctx, cacheKey(id), raw, r.ttl).Err()
	}
	return p, nil
}

func (r *CachedProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return r.inner.FindAll(ctx)
}

// Save writes through and invalidates the cached snapshot, so stock
// decrements become visible on the next read.
func (r *CachedProductRepo) Save(ctx context.Context, p *domain.Product) error {
	if err := r.inner.Save(ctx, p); err != nil {
		return err
	}
	_ = r.rdb.Del(ctx, cacheKey(p.ID)).Err()
	return nil
}

func snapshotOf(p *domain.Product) productSnapshot {
	return productSnapshot{
		ID:         p.ID.String(),
		Name:       p.Name,
		PriceCents: p.Price.Cents(),
		Currency:   p.Price.Currency(),
		Stock:      p.Stock,
	}
}

func (s productSnapshot) toDomain() (*domain.Product, error) {
	id, err := domain.NewProductID(s.ID)
	if err != nil {
		return nil, err
	}
	price, err := domain.NewMoney(s.PriceCents, s.Currency)
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(id, s.Name, price, s.Stock)
}

var _ usecase.ProductRepo = (*CachedProductRepo)(nil)
