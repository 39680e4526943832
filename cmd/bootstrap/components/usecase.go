package components

import (
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/pkg/jwt"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"
	"tagmytrophy/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthorizer,
	usecase.NewTokenValidator,
	NewSessionManager,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		NewQRCodeCommands,
		commands.NewPaymentCommands,
		NewSubscriptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewQRCodeQueries,
		queries.NewSubscriptionQueries,
	),
)

func NewSessionManager(cfg config.Config, jwtService *jwt.Service) (usecase.SessionManager, error) {
	return usecase.NewSessionManager(cfg.Admin, jwtService)
}

func NewSubscriptionCommands(
	cfg config.Config,
	profiles commands.ProfileReads,
	subReads commands.SubscriptionReads,
	subRepo commands.SubscriptionRepository,
	gateway shared.PaymentGateway,
	clk clock.Clock,
) commands.SubscriptionCommands {
	return commands.NewSubscriptionCommands(profiles, subReads, subRepo, gateway, cfg.Site.BaseURL, clk)
}

func NewQRCodeCommands(
	cfg config.Config,
	qrRepo commands.QRCodeRepository,
	qrReads commands.QRCodeReads,
	storeReads commands.StoreReads,
	authorizer usecase.Authorizer,
	encoder commands.ImageEncoder,
	clk clock.Clock,
) commands.QRCodeCommands {
	return commands.NewQRCodeCommands(qrRepo, qrReads, storeReads, authorizer, encoder, cfg.Site.BaseURL, clk)
}
