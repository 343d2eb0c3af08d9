package usecases

import (
	"context"
	"io"
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

var (
	adminActor   = authorization.NewActor(1, authorization.RoleAdmin)
	creatorActor = authorization.NewActor(10, authorization.RoleUser)
	otherActor   = authorization.NewActor(11, authorization.RoleUser)
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

// existingTicket returns ticket 7 (#0007) opened by creatorActor.
func existingTicket(status vo.TicketStatus) *ticket.Ticket {
	var reason *string
	if status.IsRejected() {
		reason = strPtr("duplicate")
	}
	now := time.Now().UTC().Add(-time.Hour)
	t, err := ticket.ReconstructTicket(7, "0007", "Leak", "Pipe leak in hall",
		status, creatorActor.UserID, nil, nil, reason, false, now, now)
	if err != nil {
		panic(err)
	}
	return t
}

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

type mockTicketRepository struct {
	SaveFunc                         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                         func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	DetachZoneFunc                   func(ctx context.Context, zoneID uint) (int64, error)
	ListPhotoReferencesByCreatorFunc func(ctx context.Context, creatorID uint) ([]string, error)
	DeleteByCreatorFunc              func(ctx context.Context, creatorID uint) (int64, error)

	updated int
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(42)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updated++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) DetachZone(ctx context.Context, zoneID uint) (int64, error) {
	if m.DetachZoneFunc != nil {
		return m.DetachZoneFunc(ctx, zoneID)
	}
	return 0, nil
}

func (m *mockTicketRepository) ListPhotoReferencesByCreator(ctx context.Context, creatorID uint) ([]string, error) {
	if m.ListPhotoReferencesByCreatorFunc != nil {
		return m.ListPhotoReferencesByCreatorFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteByCreator(ctx context.Context, creatorID uint) (int64, error) {
	if m.DeleteByCreatorFunc != nil {
		return m.DeleteByCreatorFunc(ctx, creatorID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc                     func(ctx context.Context, c *ticket.Comment) error
	ListByTicketIDFunc           func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	DeleteOnTicketsCreatedByFunc func(ctx context.Context, creatorID uint) (int64, error)
	DeleteByAuthorFunc           func(ctx context.Context, authorID uint) (int64, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(100)
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteOnTicketsCreatedBy(ctx context.Context, creatorID uint) (int64, error) {
	if m.DeleteOnTicketsCreatedByFunc != nil {
		return m.DeleteOnTicketsCreatedByFunc(ctx, creatorID)
	}
	return 0, nil
}

func (m *mockCommentRepository) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	if m.DeleteByAuthorFunc != nil {
		return m.DeleteByAuthorFunc(ctx, authorID)
	}
	return 0, nil
}

type mockZoneRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*zone.Zone, error)
}

func (m *mockZoneRepository) Create(ctx context.Context, z *zone.Zone) error { return nil }

func (m *mockZoneRepository) GetByID(ctx context.Context, id uint) (*zone.Zone, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockZoneRepository) GetByName(ctx context.Context, name string) (*zone.Zone, error) {
	return nil, nil
}

func (m *mockZoneRepository) List(ctx context.Context) ([]*zone.Zone, error) { return nil, nil }

func (m *mockZoneRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockUserRepository struct {
	GetByIDFunc  func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByAccessCode(ctx context.Context, code string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByAccessCode(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error { return nil }

// ---------------------------------------------------------------------------
// Ports
// ---------------------------------------------------------------------------

// mockTransactor runs fn inline; a returned error stands in for a rollback.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockEventPublisher struct {
	PublishAllFunc func(ctx context.Context, events []events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockEventPublisher) PublishAll(ctx context.Context, evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(ctx, evts)
	}
	return nil
}

type mockPhotoStore struct {
	SaveFunc   func(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	deleted []string
}

func (m *mockPhotoStore) Save(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, contentType, body, size)
	}
	return "tickets/photo_1.jpg", nil
}

func (m *mockPhotoStore) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

type mockReadMarker struct {
	MarkAllReadForTicketFunc func(ctx context.Context, recipientID, ticketID uint) error

	calls int
}

func (m *mockReadMarker) MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) error {
	m.calls++
	if m.MarkAllReadForTicketFunc != nil {
		return m.MarkAllReadForTicketFunc(ctx, recipientID, ticketID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Logger
// ---------------------------------------------------------------------------

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}


func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

