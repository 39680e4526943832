package components

import (
	"tagmytrophy/internal/infra/qrimage"
	"tagmytrophy/internal/infra/readstore"
	repo_impl "tagmytrophy/internal/infra/repository"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewQRCodeRepository,
			fx.As(new(commands.QRCodeRepository)),
		),
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(commands.SubscriptionRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewQRCodeReadStore,
			fx.As(new(queries.QRCodeReadStore)),
			fx.As(new(commands.QRCodeReads)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(commands.StoreReads)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
			fx.As(new(commands.ProfileReads)),
			fx.As(new(usecase.ProfileRoleReads)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
			fx.As(new(commands.SubscriptionReads)),
		),
		// QR image rendering
		fx.Annotate(
			qrimage.NewEncoder,
			fx.As(new(commands.ImageEncoder)),
		),
	),
)
