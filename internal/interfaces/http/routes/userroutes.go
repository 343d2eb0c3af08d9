package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for the identity directory routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes. Every route is
// administrator-only through the route policy.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequireRoute())
	{
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("", cfg.UserHandler.ListUsers)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
	}
}
