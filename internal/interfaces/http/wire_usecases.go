package http

import (
	identityUsecases "github.com/incidentdesk/incidentdesk/internal/application/identity/usecases"
	ticketUsecases "github.com/incidentdesk/incidentdesk/internal/application/ticket/usecases"
	zoneUsecases "github.com/incidentdesk/incidentdesk/internal/application/zone/usecases"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Identity
	resolveLoginUC   *identityUsecases.ResolveLoginUseCase
	createUserUC     *identityUsecases.CreateUserUseCase
	listUsersUC      *identityUsecases.ListUsersUseCase
	getUserUC        *identityUsecases.GetUserUseCase
	deleteUserUC     *identityUsecases.DeleteUserUseCase
	bootstrapAdminUC *identityUsecases.BootstrapAdminUseCase

	// Zones
	createZoneUC         *zoneUsecases.CreateZoneUseCase
	deleteZoneUC         *zoneUsecases.DeleteZoneUseCase
	listZonesUC          *zoneUsecases.ListZonesUseCase
	ensureDefaultZonesUC *zoneUsecases.EnsureDefaultZonesUseCase

	// Tickets and comments
	createTicketUC *ticketUsecases.CreateTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	editFieldsUC   *ticketUsecases.EditFieldsUseCase
	changeStatusUC *ticketUsecases.ChangeStatusUseCase
	acknowledgeUC  *ticketUsecases.AcknowledgeClosureUseCase
	addCommentUC   *ticketUsecases.AddCommentUseCase
	listCommentsUC *ticketUsecases.ListCommentsUseCase
}

// initUseCases builds every use case on top of the repositories and
// infrastructure services created by initInfrastructure.
func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		resolveLoginUC:   identityUsecases.NewResolveLoginUseCase(r.userRepo, c.admin, log),
		createUserUC:     identityUsecases.NewCreateUserUseCase(r.userRepo, c.admin, log),
		listUsersUC:      identityUsecases.NewListUsersUseCase(r.userRepo, log),
		getUserUC:        identityUsecases.NewGetUserUseCase(r.userRepo, log),
		bootstrapAdminUC: identityUsecases.NewBootstrapAdminUseCase(r.userRepo, c.admin, log),
		deleteUserUC: identityUsecases.NewDeleteUserUseCase(
			r.userRepo, r.ticketRepo, r.commentRepo, r.notificationRepo,
			c.photoStorage, c.unreadCache, c.txMgr, log,
		),

		createZoneUC:         zoneUsecases.NewCreateZoneUseCase(r.zoneRepo, log),
		deleteZoneUC:         zoneUsecases.NewDeleteZoneUseCase(r.zoneRepo, r.ticketRepo, c.txMgr, log),
		listZonesUC:          zoneUsecases.NewListZonesUseCase(r.zoneRepo, log),
		ensureDefaultZonesUC: zoneUsecases.NewEnsureDefaultZonesUseCase(r.zoneRepo, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.zoneRepo, ticket.NewSequentialReferenceAllocator(), c.photoStorage, c.txMgr, log,
		),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, c.notificationService, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		editFieldsUC:   ticketUsecases.NewEditFieldsUseCase(r.ticketRepo, r.zoneRepo, c.txMgr, c.eventDispatcher, log),
		changeStatusUC: ticketUsecases.NewChangeStatusUseCase(r.ticketRepo, c.txMgr, c.eventDispatcher, log),
		acknowledgeUC:  ticketUsecases.NewAcknowledgeClosureUseCase(r.ticketRepo, c.txMgr, log),
		addCommentUC: ticketUsecases.NewAddCommentUseCase(
			r.ticketRepo, r.commentRepo, r.userRepo, c.markdown, c.txMgr, c.eventDispatcher, log,
		),
		listCommentsUC: ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, r.userRepo, c.markdown, log),
	}
}
