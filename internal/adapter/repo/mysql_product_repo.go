package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

func (r *MySQLProductRepo) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, price_cents, currency, stock
FROM products WHERE id = ?`, id.String())
	return scanProduct(row)
}

func (r *MySQLProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, price_cents, currency, stock
FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MySQLProductRepo) Save(ctx context.Context, p *domain.Product) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO products (id, name, price_cents, currency, stock, created_at, updated_at)
VALUES (?,?,?,?,?,NOW(),NOW())
ON DUPLICATE KEY UPDATE name=VALUES(name), price_cents=VALUES(price_cents),
  currency=VALUES(currency), stock=VALUES(stock), updated_at=NOW()
`, p.ID.String(), p.Name, p.Price.Cents(), p.Price.Currency(), p.Stock)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		id, name, currency string
		cents              int64
		stock              int
	)
	if err := row.Scan(&id, &name, &cents, &currency, &stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	price, err := domain.NewMoney(cents, currency)
	if err != nil {
		return nil, err
	}
	pid, err := domain.NewProductID(id)
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(pid, name, price, stock)
}

var _ usecase.ProductRepo = (*MySQLProductRepo)(nil)
