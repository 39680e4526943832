package commands

import (
	"context"

	"tagmytrophy/internal/infra"
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/pkg/patch"
	"tagmytrophy/internal/usecase/queries"
	"tagmytrophy/internal/usecase/shared"
)

var (
	ErrProfileNotFound      = errs.New("profile not found")
	ErrSubscriptionNotFound = errs.New("subscription not found")
	ErrNoBillingAccount     = errs.New("no billing account on file")
)

type CancelResult struct {
	Status            string
	CancelAtPeriodEnd bool
}

type SubscriptionCommands interface {
	Cancel(ctx context.Context, email string, immediately bool) (*CancelResult, error)
	PortalSession(ctx context.Context, email string, returnURL *string) (string, error)
}

type subscriptionCommandsImpl struct {
	profiles    ProfileReads
	subReads    SubscriptionReads
	subRepo     SubscriptionRepository
	gateway     shared.PaymentGateway
	siteBaseURL string
	clock       clock.Clock
}

func NewSubscriptionCommands(
	profiles ProfileReads,
	subReads SubscriptionReads,
	subRepo SubscriptionRepository,
	gateway shared.PaymentGateway,
	siteBaseURL string,
	clk clock.Clock,
) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		profiles:    profiles,
		subReads:    subReads,
		subRepo:     subRepo,
		gateway:     gateway,
		siteBaseURL: siteBaseURL,
		clock:       clk,
	}
}

// Cancel delegates the lifecycle change to the provider and persists only
// the resulting cancellation flag locally.
func (c *subscriptionCommandsImpl) Cancel(ctx context.Context, email string, immediately bool) (*CancelResult, error) {
	record, err := c.ownSubscription(ctx, email)
	if err != nil {
		return nil, err
	}

	live, err := c.gateway.CancelSubscription(ctx, record.StripeSubscriptionID, !immediately)
	if err != nil {
		return nil, err
	}

	err = c.subRepo.SetCancelFlag(ctx, record.StripeSubscriptionID,
		live.CancelAtPeriodEnd, live.Status, c.clock.Now())
	if err != nil {
		return nil, err
	}

	return &CancelResult{
		Status:            live.Status,
		CancelAtPeriodEnd: live.CancelAtPeriodEnd,
	}, nil
}

// PortalSession opens a provider-hosted billing portal. The provider
// requires a return URL, so an omitted one falls back to the site root.
func (c *subscriptionCommandsImpl) PortalSession(ctx context.Context, email string, returnURL *string) (string, error) {
	record, err := c.ownSubscription(ctx, email)
	if err != nil {
		return "", err
	}
	if record.StripeCustomerID == "" {
		return "", ErrNoBillingAccount
	}

	return c.gateway.CreatePortalSession(ctx, record.StripeCustomerID,
		patch.Coalesce(returnURL, c.siteBaseURL))
}

func (c *subscriptionCommandsImpl) ownSubscription(ctx context.Context, email string) (*queries.SubscriptionRecord, error) {
	profile, err := c.profiles.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	record, err := c.subReads.FindByProfile(ctx, profile.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return record, nil
}
