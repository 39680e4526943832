package bootstrap

import (
	"tagmytrophy/internal/pkg/clock"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewTelemetryLimiter,
	),
)

// NewTelemetryLimiter guards the public error-report sink, which is the
// only unauthenticated write endpoint besides checkout.
func NewTelemetryLimiter(cfg config.Config, clk clock.Clock) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.TelemetryLimit, cfg.RateLimit.TelemetryWindow, clk)
}
