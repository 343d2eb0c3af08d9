package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/incidentdesk/incidentdesk/docs"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/routes"
)

const loginRateLimitScope = "login"

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
	c      *Container
}

// NewRouter creates a router over a wired container.
func NewRouter(c *Container) *Router {
	return &Router{
		engine: c.engine,
		c:      c,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.c
	h := c.hdlrs

	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(c.metrics))
	r.engine.MaxMultipartMemory = c.cfg.Server.MaxUploadMB * bytesPerMB

	r.engine.GET("/health", h.systemHandler.HealthCheck)
	r.engine.GET("/version", h.systemHandler.Version)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if c.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))
	}

	var loginLimit gin.HandlerFunc
	if c.loginLimiter != nil {
		loginLimit = middleware.RateLimit(c.loginLimiter, loginRateLimitScope, c.log)
	}

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:          h.authHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		LoginLimit:           loginLimit,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          h.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupZoneRoutes(r.engine, &routes.ZoneRouteConfig{
		ZoneHandler:          h.zoneHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        h.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler:  h.notificationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
