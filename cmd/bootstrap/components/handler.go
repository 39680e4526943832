package components

import (
	"tagmytrophy/internal/handler"
	"tagmytrophy/internal/handler/api"
	"tagmytrophy/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewQRCodeHandler,
		api.NewPaymentHandler,
		api.NewSubscriptionHandler,
		api.NewTelemetryHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	orders *api.OrderHandler,
	qrCodes *api.QRCodeHandler,
	payments *api.PaymentHandler,
	subscriptions *api.SubscriptionHandler,
	telemetry *api.TelemetryHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Orders:        orders,
		QRCodes:       qrCodes,
		Payments:      payments,
		Subscriptions: subscriptions,
		Telemetry:     telemetry,
	}
}
