package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riddimbasellc-sys/riddimbase-backend/cmd/docs"
	portssvc "github.com/riddimbasellc-sys/riddimbase-backend/internal/core/ports/services"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/middleware"
	"github.com/riddimbasellc-sys/riddimbase-backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Public reads: the active boost ranking and the plan catalog need no caller identity.
	public := r.Group("/api/v1")
	registerPublicBoostRoutes(public, services.Boost)
	registerPlanRoutes(public, services.Subscription)

	// Everything else requires the caller identity header.
	v1 := r.Group("/api/v1", middleware.IdentityMiddleware())

	registerCreditRoutes(v1, services.Credit)
	registerSalesRoutes(v1, services.Split, cfg.PlatformFeeRate)
	registerBoostRoutes(v1, services.Boost)
	registerSubscriptionRoutes(v1, services.Subscription)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
