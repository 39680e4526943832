package repository

import (
	"context"
	"time"

	"tagmytrophy/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepository(pool *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// SetCancelFlag persists only the cancellation flag after the provider has
// accepted the change; everything else about the subscription lives
// provider-side.
func (r *SubscriptionRepository) SetCancelFlag(ctx context.Context, stripeSubscriptionID string, cancelAtPeriodEnd bool, status string, now time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subscriptions SET
			cancel_at_period_end = $2,
			status               = $3,
			updated_at           = $4
		 WHERE stripe_subscription_id = $1`,
		stripeSubscriptionID, cancelAtPeriodEnd, status, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}
