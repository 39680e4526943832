package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap applies the schema idempotently on startup. The tables are
// simple enough that versioned migrations would be ceremony; revisit if the
// schema starts churning.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email              TEXT NOT NULL UNIQUE,
	role               TEXT NOT NULL DEFAULT 'customer',
	stripe_customer_id TEXT,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stores (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	status           TEXT NOT NULL DEFAULT 'pending',
	customer_email   TEXT NOT NULL,
	customer_name    TEXT NOT NULL DEFAULT '',
	shipping_address JSONB NOT NULL DEFAULT '{}'::jsonb,
	items            JSONB NOT NULL DEFAULT '[]'::jsonb,
	subtotal         NUMERIC(10,2) NOT NULL DEFAULT 0,
	tax              NUMERIC(10,2) NOT NULL DEFAULT 0,
	shipping         NUMERIC(10,2) NOT NULL DEFAULT 0,
	total            NUMERIC(10,2) NOT NULL DEFAULT 0,
	tracking_number  TEXT,
	carrier          TEXT,
	notes            TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC);

CREATE TABLE IF NOT EXISTS qr_codes (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	code           TEXT NOT NULL UNIQUE,
	status         TEXT NOT NULL DEFAULT 'available',
	owner_id       UUID REFERENCES profiles (id),
	store_id       UUID REFERENCES stores (id),
	store_name     TEXT,
	slug           TEXT UNIQUE,
	image_data_url TEXT,
	claimed        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_qr_codes_status ON qr_codes (status);

CREATE TABLE IF NOT EXISTS subscriptions (
	id                     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	profile_id             UUID NOT NULL REFERENCES profiles (id),
	stripe_subscription_id TEXT NOT NULL UNIQUE,
	stripe_customer_id     TEXT NOT NULL,
	status                 TEXT NOT NULL,
	cancel_at_period_end   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
