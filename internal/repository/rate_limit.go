package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RateLimitRepository struct {
	db *pgxpool.Pool
}

func NewRateLimitRepository(db *pgxpool.Pool) *RateLimitRepository {
	return &RateLimitRepository{db: db}
}

// CheckAndIncrement bumps the counter for the chat's current minute window
// and returns the new count.
func (r *RateLimitRepository) CheckAndIncrement(ctx context.Context, chatID int64) (int64, error) {
	const query = `
		INSERT INTO rate_limits (chat_id, window_start, count)
		VALUES ($1, date_trunc('minute', now()), 1)
		ON CONFLICT (chat_id, window_start)
		DO UPDATE SET count = rate_limits.count + 1
		RETURNING count`

	var count int64
	if err := r.db.QueryRow(ctx, query, chatID).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment rate limit: %w", err)
	}
	return count, nil
}

// DeleteExpired drops windows older than the current minute.
func (r *RateLimitRepository) DeleteExpired(ctx context.Context) error {
	const query = `DELETE FROM rate_limits WHERE window_start < date_trunc('minute', now())`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("delete expired rate limit windows: %w", err)
	}
	return nil
}
