package readstore

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionReadStore struct {
	pool *pgxpool.Pool
}

func NewSubscriptionReadStore(pool *pgxpool.Pool) *SubscriptionReadStore {
	return &SubscriptionReadStore{pool: pool}
}

// FindByProfile returns the newest subscription row for a profile. The
// local row only caches provider identifiers and flags; live status comes
// from the provider on demand.
func (r *SubscriptionReadStore) FindByProfile(ctx context.Context, profileID uuid.UUID) (*queries.SubscriptionRecord, error) {
	var rec queries.SubscriptionRecord
	err := r.pool.QueryRow(ctx,
		`SELECT id, profile_id, stripe_subscription_id, stripe_customer_id, status, cancel_at_period_end
		 FROM subscriptions WHERE profile_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		profileID).Scan(
		&rec.ID, &rec.ProfileID, &rec.StripeSubscriptionID,
		&rec.StripeCustomerID, &rec.Status, &rec.CancelAtPeriodEnd)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return &rec, nil
}
