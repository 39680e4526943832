package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models returned to the handler layer. Views are flat row shapes;
// handlers map them onto response DTOs.

type OrderView struct {
	ID              uuid.UUID
	Status          string
	CustomerEmail   string
	CustomerName    string
	ShippingAddress json.RawMessage
	Items           json.RawMessage
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	TrackingNumber  *string
	Carrier         *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type QRCodeView struct {
	ID           uuid.UUID
	Code         string
	Status       string
	OwnerID      *uuid.UUID
	StoreID      *uuid.UUID
	StoreName    *string
	Slug         *string
	ImageDataURL *string
	Claimed      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProfileView struct {
	ID               uuid.UUID
	Email            string
	Role             string
	StripeCustomerID *string
}

type StoreView struct {
	ID   uuid.UUID
	Name string
}

// SubscriptionRecord is the locally cached copy of a provider subscription.
type SubscriptionRecord struct {
	ID                   uuid.UUID
	ProfileID            uuid.UUID
	StripeSubscriptionID string
	StripeCustomerID     string
	Status               string
	CancelAtPeriodEnd    bool
}

// SubscriptionStatusView is the normalized shape returned after a live
// provider refresh.
type SubscriptionStatusView struct {
	Status            string
	CurrentPeriodEnd  time.Time
	CancelAtPeriodEnd bool
	TrialEnd          *time.Time
	CardBrand         string
	CardLast4         string
}
