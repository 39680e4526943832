package readstore

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreReadStore struct {
	pool *pgxpool.Pool
}

func NewStoreReadStore(pool *pgxpool.Pool) *StoreReadStore {
	return &StoreReadStore{pool: pool}
}

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	var view queries.StoreView
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM stores WHERE id = $1`, id).Scan(&view.ID, &view.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store", err)
	}
	return &view, nil
}
