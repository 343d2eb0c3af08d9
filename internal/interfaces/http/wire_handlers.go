package http

import (
	"github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers"
	ticketHandlers "github.com/incidentdesk/incidentdesk/internal/interfaces/http/handlers/ticket"
)

const bytesPerMB = 1 << 20

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	zoneHandler         *handlers.ZoneHandler
	ticketHandler       *ticketHandlers.TicketHandler
	notificationHandler *handlers.NotificationHandler
	systemHandler       *handlers.SystemHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.resolveLoginUC, u.getUserUC, c.jwtSvc, c.metrics, log),
		userHandler: handlers.NewUserHandler(u.createUserUC, u.listUsersUC, u.deleteUserUC, log),
		zoneHandler: handlers.NewZoneHandler(u.createZoneUC, u.deleteZoneUC, u.listZonesUC, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC,
			u.getTicketUC,
			u.listTicketsUC,
			u.editFieldsUC,
			u.changeStatusUC,
			u.acknowledgeUC,
			u.addCommentUC,
			u.listCommentsUC,
			c.cfg.Server.MaxUploadMB*bytesPerMB,
			log,
		),
		notificationHandler: handlers.NewNotificationHandler(c.notificationService, log),
		systemHandler:       handlers.NewSystemHandler(c.sqlDB, log),
	}
}
