package routes

import (
	"github.com/gin-gonic/gin"

	"siloops/internal/interfaces/http/handlers"
	"siloops/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	PlanHandler         *handlers.PlanHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription status, plan catalog and
// admin plan-change routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	engine.GET("/api/v1/plans", cfg.PlanHandler.List)

	subscription := engine.Group("/api/v1/subscription")
	{
		status := subscription.Group("")
		status.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireCompany())
		{
			status.GET("", cfg.SubscriptionHandler.GetStatus)
		}

		admin := subscription.Group("")
		admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		{
			admin.PUT("/plan", cfg.SubscriptionHandler.UpdatePlan)
		}
	}
}
