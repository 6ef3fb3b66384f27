package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/middleware"
	"github.com/SscSPs/profit_first_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// workspace listing works without a token and shows demos only
	public := v1.Group("", middleware.OptionalAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterWorkspaceRoutes(public, services.Workspace)

	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	registerCompanyRoutes(authed.Group("/companies/:"+companyIDParam), services)
	// same routes acting on the X-Active-Company-ID header
	registerCompanyRoutes(authed.Group("/company"), services)
}

func registerCompanyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	RegisterAccountRoutes(rg, services.Account, services.Workspace)
	RegisterCadenceRoutes(rg, services.Cadence, nil)
}
