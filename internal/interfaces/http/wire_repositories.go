package http

import (
	"gorm.io/gorm"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/repository"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo         user.Repository
	zoneRepo         zone.Repository
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
	notificationRepo notification.NotificationRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		zoneRepo:         repository.NewZoneRepository(db, log),
		ticketRepo:       repository.NewTicketRepository(db, log),
		commentRepo:      repository.NewCommentRepository(db, log),
		notificationRepo: repository.NewNotificationRepository(db, log),
	}
}
