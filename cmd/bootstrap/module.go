package bootstrap

import (
	"tagmytrophy/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PaymentModule,
	RateLimitModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
