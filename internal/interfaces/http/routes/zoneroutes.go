package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
)

type ZoneRouteConfig struct {
	ZoneHandler          *handlers.ZoneHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupZoneRoutes(engine *gin.Engine, cfg *ZoneRouteConfig) {
	zones := engine.Group("/zones")
	zones.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequireRoute())
	{
		zones.GET("", cfg.ZoneHandler.ListZones)
		zones.POST("", cfg.ZoneHandler.CreateZone)
		zones.DELETE("/:id", cfg.ZoneHandler.DeleteZone)
	}
}
