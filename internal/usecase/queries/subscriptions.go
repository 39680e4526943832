package queries

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errs.New("profile not found")
	ErrSubscriptionNotFound = errs.New("subscription not found")
)

type SubscriptionQueries interface {
	// Status refreshes the caller's subscription from the provider and
	// returns the normalized shape. The local row is only the pointer to
	// the provider record.
	Status(ctx context.Context, email string) (*SubscriptionStatusView, error)
}

type ProfileReadStore interface {
	FindByEmail(ctx context.Context, email string) (*ProfileView, error)
}

type SubscriptionReadStore interface {
	FindByProfile(ctx context.Context, profileID uuid.UUID) (*SubscriptionRecord, error)
}

type subscriptionQueriesImpl struct {
	profiles      ProfileReadStore
	subscriptions SubscriptionReadStore
	gateway       shared.PaymentGateway
}

func NewSubscriptionQueries(profiles ProfileReadStore, subscriptions SubscriptionReadStore, gateway shared.PaymentGateway) SubscriptionQueries {
	return &subscriptionQueriesImpl{
		profiles:      profiles,
		subscriptions: subscriptions,
		gateway:       gateway,
	}
}

func (q *subscriptionQueriesImpl) Status(ctx context.Context, email string) (*SubscriptionStatusView, error) {
	profile, err := q.profiles.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	record, err := q.subscriptions.FindByProfile(ctx, profile.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	live, err := q.gateway.GetSubscription(ctx, record.StripeSubscriptionID)
	if err != nil {
		return nil, err
	}

	return &SubscriptionStatusView{
		Status:            live.Status,
		CurrentPeriodEnd:  live.CurrentPeriodEnd,
		CancelAtPeriodEnd: live.CancelAtPeriodEnd,
		TrialEnd:          live.TrialEnd,
		CardBrand:         live.CardBrand,
		CardLast4:         live.CardLast4,
	}, nil
}
