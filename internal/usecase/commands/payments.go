package commands

import (
	"context"
	"strconv"

	"tagmytrophy/internal/domain/order"
	"tagmytrophy/internal/domain/plan"
	reqdto "tagmytrophy/internal/handler/dto/request"
	"tagmytrophy/internal/pkg/errs"
	"tagmytrophy/internal/pkg/money"
	"tagmytrophy/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrUnknownPlan = errs.New("unknown plan")

type CreateIntentResult struct {
	ClientSecret    string
	PaymentIntentID string
	CustomerID      string
	AmountCents     int64
}

type PaymentCommands interface {
	CreatePaymentIntent(ctx context.Context, req reqdto.CreatePaymentIntentRequest, idempotencyKey string) (*CreateIntentResult, error)
}

type paymentCommandsImpl struct {
	gateway shared.PaymentGateway
}

func NewPaymentCommands(gateway shared.PaymentGateway) PaymentCommands {
	return &paymentCommandsImpl{gateway: gateway}
}

// CreatePaymentIntent prices the selected plan server-side (subtotal from
// the catalog, tax at the fixed rate, total = subtotal + tax) and opens a
// provider intent for that amount. Client-supplied prices are never
// trusted.
func (c *paymentCommandsImpl) CreatePaymentIntent(ctx context.Context, req reqdto.CreatePaymentIntentRequest, idempotencyKey string) (*CreateIntentResult, error) {
	selected, err := plan.ByID(req.Plan)
	if err != nil {
		return nil, ErrUnknownPlan
	}

	subtotal := selected.Price
	tax := money.Tax(subtotal, money.DefaultTaxRate)
	totals := order.NewTotals(subtotal, tax, decimal.Zero)

	customerID, err := c.gateway.EnsureCustomer(ctx, req.CustomerEmail, req.CustomerName)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{
		"plan":           selected.ID,
		"tag_count":      strconv.Itoa(selected.TagCount),
		"customer_email": req.CustomerEmail,
	}
	for k, v := range req.Customization {
		metadata["custom_"+k] = v
	}

	intent, err := c.gateway.CreatePaymentIntent(ctx, shared.CreateIntentParams{
		CustomerID:     customerID,
		AmountCents:    money.Cents(totals.Total),
		Currency:       "usd",
		Description:    selected.Name,
		IdempotencyKey: idempotencyKey,
		Metadata:       metadata,
	})
	if err != nil {
		return nil, err
	}

	return &CreateIntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		CustomerID:      intent.CustomerID,
		AmountCents:     intent.AmountCents,
	}, nil
}
