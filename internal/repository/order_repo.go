package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldwidesim/esim-store/internal/model"
)

// OrderStore is the append-only per-user order collection. Orders are
// written once per completed purchase and never deleted.
type OrderStore interface {
	Append(ctx context.Context, order *model.Order) error
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// OrderRepository is the Postgres-backed order store.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Append(ctx context.Context, order *model.Order) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO orders (user_id, order_no, country, package_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		order.UserID, order.OrderNo, order.Country, order.PackageName,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, order_no, country, package_name, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderNo, &o.Country, &o.PackageName, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
