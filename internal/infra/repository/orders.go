package repository

import (
	"context"
	"time"

	"tagmytrophy/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Update merges the supplied fields into the stored order. Nil optional
// fields keep their current values; updated_at is always stamped.
func (r *OrderRepository) Update(ctx context.Context, id uuid.UUID, status string, trackingNumber, carrier, notes *string, now time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET
			status          = $2,
			tracking_number = COALESCE($3, tracking_number),
			carrier         = COALESCE($4, carrier),
			notes           = COALESCE($5, notes),
			updated_at      = $6
		 WHERE id = $1`,
		id, status, trackingNumber, carrier, notes, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
