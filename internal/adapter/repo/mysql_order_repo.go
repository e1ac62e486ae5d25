package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, customer_id, status, total_cents, currency, created_at, updated_at
FROM orders WHERE id = ?`, id)

	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *MySQLOrderRepo) FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, customer_id, status, total_cents, currency, created_at, updated_at
FROM orders WHERE customer_id = ? ORDER BY created_at`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range out {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Save upserts the order row and rewrites its lines in one transaction.
func (r *MySQLOrderRepo) Save(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO orders (id, customer_id, status, total_cents, currency, created_at, updated_at)
VALUES (?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE status=VALUES(status), total_cents=VALUES(total_cents),
  currency=VALUES(currency), updated_at=VALUES(updated_at)
`, o.ID, o.CustomerID, string(o.Status), o.Total.Cents(), o.Total.Currency(),
		o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price_cents, currency)
VALUES (?,?,?,?,?)
`, o.ID, it.ProductID.String(), it.Quantity, it.Price.Cents(), it.Price.Currency()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *MySQLOrderRepo) loadItems(ctx context.Context, o *domain.Order) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT product_id, quantity, price_cents, currency
FROM order_items WHERE order_id = ? ORDER BY id`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pid, currency string
			qty           int
			cents         int64
		)
		if err := rows.Scan(&pid, &qty, &cents, &currency); err != nil {
			return err
		}
		price, err := domain.NewMoney(cents, currency)
		if err != nil {
			return fmt.Errorf("order %s item %s: %w", o.ID, pid, err)
		}
		productID, err := domain.NewProductID(pid)
		if err != nil {
			return err
		}
		o.Items = append(o.Items, domain.OrderItem{ProductID: productID, Quantity: qty, Price: price})
	}
	return rows.Err()
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o                domain.Order
		status, currency string
		cents            int64
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &status, &cents, &currency, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	st, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}
	o.Status = st
	if currency != "" {
		total, err := domain.NewMoney(cents, currency)
		if err != nil {
			return nil, err
		}
		o.Total = total
	}
	return &o, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
