package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler          *handlers.AuthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// LoginLimit throttles POST /auth/login; nil disables throttling.
	LoginLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		login := []gin.HandlerFunc{cfg.AuthHandler.Login}
		if cfg.LoginLimit != nil {
			login = append([]gin.HandlerFunc{cfg.LoginLimit}, login...)
		}
		auth.POST("/login", login...)

		auth.GET("/me",
			cfg.AuthMiddleware.RequireAuth(),
			cfg.PermissionMiddleware.RequireRoute(),
			cfg.AuthHandler.GetCurrentUser)
	}
}
