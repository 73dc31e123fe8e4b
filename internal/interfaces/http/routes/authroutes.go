// Package routes wires handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"siloops/internal/interfaces/http/handlers"
	"siloops/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/v1/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)

		adminOnly := auth.Group("")
		adminOnly.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
		{
			adminOnly.POST("/register", cfg.AuthHandler.Register)
		}
	}
}
