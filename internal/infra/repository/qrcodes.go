package repository

import (
	"context"
	"errors"
	"time"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type QRCodeRepository struct {
	pool *pgxpool.Pool
}

func NewQRCodeRepository(pool *pgxpool.Pool) *QRCodeRepository {
	return &QRCodeRepository{pool: pool}
}

// InsertBatch creates fresh inventory rows for a run of generated codes.
// The whole batch lands or none of it does.
func (r *QRCodeRepository) InsertBatch(ctx context.Context, codes []string, now time.Time) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, code := range codes {
			_, err := tx.Exec(ctx,
				`INSERT INTO qr_codes (code, status, created_at, updated_at)
				 VALUES ($1, 'available', $2, $2)`,
				code, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate qr code in batch", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert qr code batch", err)
	}
	return nil
}

// AssignStore marks a batch of tags as stocked in a store, copying the
// store's display name onto each row. Runs in one transaction so a partial
// batch never becomes visible.
func (r *QRCodeRepository) AssignStore(ctx context.Context, ids []uuid.UUID, storeID uuid.UUID, storeName string, now time.Time) (int64, error) {
	var updated int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE qr_codes SET
				status     = 'in_store',
				store_id   = $2,
				store_name = $3,
				updated_at = $4
			 WHERE id = ANY($1)`,
			ids, storeID, storeName, now)
		if err != nil {
			return err
		}
		updated = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to assign qr codes to store", err)
	}
	return updated, nil
}

// UnassignStore clears the store assignment and reverts the batch to
// available inventory.
func (r *QRCodeRepository) UnassignStore(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE qr_codes SET
			status     = 'available',
			store_id   = NULL,
			store_name = NULL,
			updated_at = $2
		 WHERE id = ANY($1)`,
		ids, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to unassign qr codes", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteBySlug removes a record and reports what was deleted so the caller
// can echo the claim state back.
func (r *QRCodeRepository) DeleteBySlug(ctx context.Context, slug string) (*queries.QRCodeView, error) {
	var view queries.QRCodeView
	err := r.pool.QueryRow(ctx,
		`DELETE FROM qr_codes WHERE slug = $1
		 RETURNING id, code, status, owner_id, store_id, store_name, slug,
		           image_data_url, claimed, created_at, updated_at`,
		slug).Scan(
		&view.ID, &view.Code, &view.Status,
		&view.OwnerID, &view.StoreID, &view.StoreName, &view.Slug,
		&view.ImageDataURL, &view.Claimed,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slug not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete qr code", err)
	}
	return &view, nil
}

// UpdateImage overwrites only the rendered image and the update timestamp;
// ownership and claim state are untouched.
func (r *QRCodeRepository) UpdateImage(ctx context.Context, slug string, imageDataURL string, now time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE qr_codes SET image_data_url = $2, updated_at = $3 WHERE slug = $1`,
		slug, imageDataURL, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update qr image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slug not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}
