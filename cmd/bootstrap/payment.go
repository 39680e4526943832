package bootstrap

import (
	"tagmytrophy/internal/infra/payment"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe.SecretKey)
}
