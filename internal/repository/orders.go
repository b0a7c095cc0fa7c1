package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/avdeev-m/orderbot/internal/domain"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert persists one order and fills in its ID and creation time.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	const query = `
		INSERT INTO orders (reference, client_name, photo_url, amount, appointment, status, chat_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		order.Reference,
		order.ClientName,
		order.PhotoURL,
		order.Amount.String(),
		order.Appointment,
		order.Status,
		order.ChatID,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Count returns the total number of persisted orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

// Recent returns the newest orders, most recent first.
func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	const query = `
		SELECT id, reference, client_name, photo_url, amount, appointment, status, chat_id, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var amount string
		if err := rows.Scan(&o.ID, &o.Reference, &o.ClientName, &o.PhotoURL, &amount,
			&o.Appointment, &o.Status, &o.ChatID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse order amount: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
