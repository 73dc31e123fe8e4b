package routes

import (
	"github.com/gin-gonic/gin"

	"siloops/internal/interfaces/http/handlers"
	"siloops/internal/interfaces/http/middleware"
)

// CompanyRouteConfig holds dependencies for company routes.
type CompanyRouteConfig struct {
	CompanyHandler *handlers.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCompanyRoutes configures the admin tenant routes.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/api/v1/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		companies.POST("", cfg.CompanyHandler.Create)
		companies.GET("", cfg.CompanyHandler.List)
		companies.GET("/:id", cfg.CompanyHandler.Get)
	}
}
