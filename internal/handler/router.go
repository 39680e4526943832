package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tagmytrophy/internal/handler/api"
	"tagmytrophy/internal/handler/middleware"
	"tagmytrophy/internal/pkg/config"
	"tagmytrophy/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Orders        *api.OrderHandler
	QRCodes       *api.QRCodeHandler
	Payments      *api.PaymentHandler
	Subscriptions *api.SubscriptionHandler
	Telemetry     *api.TelemetryHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	telemetryLimiter *ratelimit.Limiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, telemetryLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	telemetryLimiter *ratelimit.Limiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAdminSession())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/list", Handler: h.Orders.List},
				{Method: http.MethodPost, Path: "/scan-qr", Handler: h.Orders.ScanQR},
				{Method: http.MethodPost, Path: "/update", Handler: h.Orders.Update},
			})
		}

		qrCodes := apiGroup.Group("/qr-codes")
		qrCodes.Use(authMiddleware.RequireAdminSession())
		{
			addRoutes(qrCodes, []route{
				{Method: http.MethodPost, Path: "/assign-store", Handler: h.QRCodes.AssignStore},
				{Method: http.MethodPost, Path: "/generate-ids", Handler: h.QRCodes.GenerateIDs},
			})
		}

		qr := apiGroup.Group("/qr")
		qr.Use(authMiddleware.RequireAdminSession())
		{
			addRoutes(qr, []route{
				{Method: http.MethodPost, Path: "/delete", Handler: h.QRCodes.DeleteSlug},
				{Method: http.MethodPost, Path: "/regenerate", Handler: h.QRCodes.RegenerateSlug},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/create-payment-intent", Handler: h.Payments.CreatePaymentIntent},
		})

		subscriptions := apiGroup.Group("/subscriptions")
		subscriptions.Use(authMiddleware.RequireAdminSession())
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "/cancel", Handler: h.Subscriptions.Cancel},
				{Method: http.MethodPost, Path: "/portal", Handler: h.Subscriptions.Portal},
			})
		}

		status := apiGroup.Group("/subscription")
		status.Use(authMiddleware.RequireAdminSession())
		{
			addRoutes(status, []route{
				{Method: http.MethodGet, Path: "/status", Handler: h.Subscriptions.Status},
			})
		}

		errorsGroup := apiGroup.Group("/errors")
		{
			addRoutes(errorsGroup, []route{
				{
					Method:  http.MethodPost,
					Path:    "/log",
					Handler: h.Telemetry.LogError,
					Mw:      []gin.HandlerFunc{middleware.RateLimit(telemetryLimiter)},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
