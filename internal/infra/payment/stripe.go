package payment

import (
	"context"
	"time"

	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/usecase/shared"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway implements shared.PaymentGateway against the Stripe API.
// It keeps all stripe-go types behind the port so usecases never see them.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// EnsureCustomer finds the customer by email or creates one. Stripe allows
// duplicate emails, so the first match wins.
func (g *StripeGateway) EnsureCustomer(ctx context.Context, email, name string) (string, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	iter := g.api.Customers.List(listParams)
	for iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", errs.Wrap(err, "failed to look up customer")
	}

	createParams := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	createParams.Context = ctx

	cust, err := g.api.Customers.New(createParams)
	if err != nil {
		return "", errs.Wrap(err, "failed to create customer")
	}
	return cust.ID, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, p shared.CreateIntentParams) (*shared.IntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(p.AmountCents),
		Currency:    stripe.String(p.Currency),
		Customer:    stripe.String(p.CustomerID),
		Description: stripe.String(p.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	result := &shared.IntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		CustomerID:   p.CustomerID,
		AmountCents:  intent.Amount,
	}
	if intent.Customer != nil {
		result.CustomerID = intent.Customer.ID
	}
	return result, nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, subscriptionID string) (*shared.ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	params.AddExpand("default_payment_method")

	sub, err := g.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch subscription")
	}
	return fromStripeSubscription(sub), nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*shared.ProviderSubscription, error) {
	if atPeriodEnd {
		params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
		params.Context = ctx

		sub, err := g.api.Subscriptions.Update(subscriptionID, params)
		if err != nil {
			return nil, errs.Wrap(err, "failed to schedule subscription cancellation")
		}
		return fromStripeSubscription(sub), nil
	}

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	sub, err := g.api.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to cancel subscription")
	}
	return fromStripeSubscription(sub), nil
}

func (g *StripeGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := g.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create billing portal session")
	}
	return sess.URL, nil
}

func fromStripeSubscription(sub *stripe.Subscription) *shared.ProviderSubscription {
	out := &shared.ProviderSubscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	// current_period_end lives on the subscription items
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		out.CurrentPeriodEnd = time.Unix(sub.Items.Data[0].CurrentPeriodEnd, 0)
	}
	if sub.TrialEnd > 0 {
		trialEnd := time.Unix(sub.TrialEnd, 0)
		out.TrialEnd = &trialEnd
	}
	if sub.DefaultPaymentMethod != nil && sub.DefaultPaymentMethod.Card != nil {
		out.CardBrand = string(sub.DefaultPaymentMethod.Card.Brand)
		out.CardLast4 = sub.DefaultPaymentMethod.Card.Last4
	}
	return out
}
