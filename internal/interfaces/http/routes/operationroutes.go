package routes

import (
	"github.com/gin-gonic/gin"

	"siloops/internal/interfaces/http/handlers"
	"siloops/internal/interfaces/http/middleware"
)

// OperationRouteConfig holds dependencies for operation routes.
type OperationRouteConfig struct {
	OperationHandler *handlers.OperationHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupOperationRoutes configures the quota-gated operation routes.
func SetupOperationRoutes(engine *gin.Engine, cfg *OperationRouteConfig) {
	operations := engine.Group("/api/v1/operations")
	operations.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireCompany())
	{
		operations.POST("", cfg.OperationHandler.Create)
		operations.GET("", cfg.OperationHandler.List)
		operations.GET("/:id", cfg.OperationHandler.Get)
		operations.DELETE("/:id", cfg.OperationHandler.Delete)
	}
}
