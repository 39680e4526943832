package commands

import (
	"context"
	"time"

	"tagmytrophy/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository, plus the read
// lookups commands need for validation.

type OrderRepository interface {
	Update(ctx context.Context, id uuid.UUID, status string, trackingNumber, carrier, notes *string, now time.Time) error
}

type QRCodeRepository interface {
	InsertBatch(ctx context.Context, codes []string, now time.Time) error
	AssignStore(ctx context.Context, ids []uuid.UUID, storeID uuid.UUID, storeName string, now time.Time) (int64, error)
	UnassignStore(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
	DeleteBySlug(ctx context.Context, slug string) (*queries.QRCodeView, error)
	UpdateImage(ctx context.Context, slug string, imageDataURL string, now time.Time) error
}

type SubscriptionRepository interface {
	SetCancelFlag(ctx context.Context, stripeSubscriptionID string, cancelAtPeriodEnd bool, status string, now time.Time) error
}

type QRCodeReads interface {
	MaxCode(ctx context.Context) (string, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.QRCodeView, error)
	FindBySlug(ctx context.Context, slug string) (*queries.QRCodeView, error)
}

type StoreReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error)
}

type ProfileReads interface {
	FindByEmail(ctx context.Context, email string) (*queries.ProfileView, error)
}

type SubscriptionReads interface {
	FindByProfile(ctx context.Context, profileID uuid.UUID) (*queries.SubscriptionRecord, error)
}

// ImageEncoder renders a URL into an embeddable image payload.
type ImageEncoder interface {
	EncodeDataURL(url string) (string, error)
}
