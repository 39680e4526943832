package shared

import (
	"context"
	"time"
)

// PaymentGateway is the port onto the payment provider. Both the command
// side (intents, cancellations, portal sessions) and the query side
// (status refresh) consume it.
type PaymentGateway interface {
	EnsureCustomer(ctx context.Context, email, name string) (string, error)
	CreatePaymentIntent(ctx context.Context, p CreateIntentParams) (*IntentResult, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*ProviderSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*ProviderSubscription, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type CreateIntentParams struct {
	CustomerID     string
	AmountCents    int64
	Currency       string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

type IntentResult struct {
	ID           string
	ClientSecret string
	CustomerID   string
	AmountCents  int64
}

// ProviderSubscription is the normalized slice of a live provider
// subscription the app cares about.
type ProviderSubscription struct {
	ID                string
	CustomerID        string
	Status            string
	CurrentPeriodEnd  time.Time
	CancelAtPeriodEnd bool
	TrialEnd          *time.Time
	CardBrand         string
	CardLast4         string
}
