package readstore

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QRCodeReadStore struct {
	pool *pgxpool.Pool
}

func NewQRCodeReadStore(pool *pgxpool.Pool) *QRCodeReadStore {
	return &QRCodeReadStore{pool: pool}
}

const qrColumns = `id, code, status, owner_id, store_id, store_name, slug,
	image_data_url, claimed, created_at, updated_at`

func (r *QRCodeReadStore) FindByCode(ctx context.Context, code string) (*queries.QRCodeView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+qrColumns+` FROM qr_codes WHERE code = $1`, code)

	view, err := scanQRCode(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("qr code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find qr code", err)
	}
	return view, nil
}

func (r *QRCodeReadStore) FindBySlug(ctx context.Context, slug string) (*queries.QRCodeView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+qrColumns+` FROM qr_codes WHERE slug = $1`, slug)

	view, err := scanQRCode(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("slug not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find qr code by slug", err)
	}
	return view, nil
}

func (r *QRCodeReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.QRCodeView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+qrColumns+` FROM qr_codes WHERE id = ANY($1) ORDER BY code`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load qr codes", err)
	}
	defer rows.Close()

	var views []*queries.QRCodeView
	for rows.Next() {
		view, err := scanQRCode(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan qr code row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate qr code rows", err)
	}

	return views, nil
}

// MaxCode returns the highest identifier handed out so far, in generation
// order (prefix length, then prefix, then number). Empty string when no
// codes exist yet.
func (r *QRCodeReadStore) MaxCode(ctx context.Context) (string, error) {
	var code *string
	err := r.pool.QueryRow(ctx,
		`SELECT code FROM qr_codes
		 ORDER BY length(code) DESC, code DESC
		 LIMIT 1`).Scan(&code)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to read max qr code", err)
	}
	if code == nil {
		return "", nil
	}
	return *code, nil
}

func scanQRCode(row rowScanner) (*queries.QRCodeView, error) {
	var view queries.QRCodeView
	err := row.Scan(
		&view.ID, &view.Code, &view.Status,
		&view.OwnerID, &view.StoreID, &view.StoreName, &view.Slug,
		&view.ImageDataURL, &view.Claimed,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
