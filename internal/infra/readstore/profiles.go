package readstore

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileReadStore struct {
	pool *pgxpool.Pool
}

func NewProfileReadStore(pool *pgxpool.Pool) *ProfileReadStore {
	return &ProfileReadStore{pool: pool}
}

func (r *ProfileReadStore) FindByEmail(ctx context.Context, email string) (*queries.ProfileView, error) {
	var view queries.ProfileView
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, stripe_customer_id FROM profiles WHERE email = $1`,
		email).Scan(&view.ID, &view.Email, &view.Role, &view.StripeCustomerID)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find profile by email", err)
	}
	return &view, nil
}
