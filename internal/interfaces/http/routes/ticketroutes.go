package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers/ticket"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth(), config.PermissionMiddleware.RequireRoute())
	{
		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific action endpoints
		tickets.PATCH("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/acknowledge", config.TicketHandler.AcknowledgeClosure)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.EditTicket)
	}
}
