package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/NiyonkuruJD/home_ledger_app/internal/core/ports/services"
	"github.com/NiyonkuruJD/home_ledger_app/internal/middleware"
	"github.com/NiyonkuruJD/home_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency)
	registerCategoryRoutes(v1, services.Category)
	RegisterAccountRoutes(v1, services.Account, services.Movement)
	registerMovementRoutes(v1, services.Movement)
	registerPaymentRoutes(v1, services.Payment)
	registerTransferRoutes(v1, services.Transfer)
	registerReportingRoutes(v1, services.Reporting)
}

// loginRateLimiter builds the per-IP limiter applied to the login endpoint.
// Login gets a tighter budget than the global limit to slow down credential
// stuffing.
func loginRateLimiter() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
