package readstore

import (
	"context"
	"encoding/json"
	"time"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

const orderColumns = `id, status, customer_email, customer_name, shipping_address, items,
	subtotal::text, tax::text, shipping::text, total::text,
	tracking_number, carrier, notes, created_at, updated_at`

// ListAll returns every order, newest first. The admin panel renders the
// whole list; there is no pagination.
func (r *OrderReadStore) ListAll(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	return views, nil
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	view, err := scanOrder(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*queries.OrderView, error) {
	var (
		view                          queries.OrderView
		shippingAddress, items        []byte
		subtotal, tax, shipping, total string
		createdAt, updatedAt          time.Time
	)

	err := row.Scan(
		&view.ID, &view.Status, &view.CustomerEmail, &view.CustomerName,
		&shippingAddress, &items,
		&subtotal, &tax, &shipping, &total,
		&view.TrackingNumber, &view.Carrier, &view.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ShippingAddress = json.RawMessage(shippingAddress)
	view.Items = json.RawMessage(items)
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt

	if view.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, err
	}
	if view.Tax, err = decimal.NewFromString(tax); err != nil {
		return nil, err
	}
	if view.Shipping, err = decimal.NewFromString(shipping); err != nil {
		return nil, err
	}
	if view.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}

	return &view, nil
}
