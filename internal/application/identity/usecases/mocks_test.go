package usecases

import (
	"context"
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

var (
	adminActor = authorization.NewActor(1, authorization.RoleAdmin)
	userActor  = authorization.NewActor(2, authorization.RoleUser)
)

func mustUser(id uint, name, code string, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(id, name, code, role, time.Now().UTC())
	if err != nil {
		panic(err)
	}
	return u
}

// mockUserRepository keeps users in memory. Set the *Err fields to force failures.
type mockUserRepository struct {
	users  map[uint]*user.User
	nextID uint

	GetErr    error
	CreateErr error
	ListFunc  func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	deleted   []uint
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User), nextID: 100}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, existing := range m.users {
		if existing.AccessCode() == u.AccessCode() {
			return errors.NewDuplicateAccessCodeError(u.AccessCode())
		}
	}
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[m.nextID] = u
	m.nextID++
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.users[id], nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetByAccessCode(ctx context.Context, code string) (*user.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.users {
		if u.AccessCode() == code {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByAccessCode(ctx context.Context, code string) (bool, error) {
	u, err := m.GetByAccessCode(ctx, code)
	return u != nil, err
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	var out []*user.User
	for _, u := range m.users {
		if filter.Role == nil || u.Role() == *filter.Role {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	delete(m.users, id)
	return nil
}

// cascadeLog records the order of cascade steps across repositories.
type cascadeLog struct {
	steps []string
}

func (l *cascadeLog) add(step string) { l.steps = append(l.steps, step) }

type mockTicketRepository struct {
	ticket.TicketRepository

	log       *cascadeLog
	photoKeys []string
	DeleteErr error
}

func (m *mockTicketRepository) ListPhotoReferencesByCreator(ctx context.Context, creatorID uint) ([]string, error) {
	m.log.add("list_photos")
	return m.photoKeys, nil
}

func (m *mockTicketRepository) DeleteByCreator(ctx context.Context, creatorID uint) (int64, error) {
	m.log.add("delete_tickets")
	if m.DeleteErr != nil {
		return 0, m.DeleteErr
	}
	return 2, nil
}

type mockCommentRepository struct {
	ticket.CommentRepository

	log *cascadeLog
}

func (m *mockCommentRepository) DeleteOnTicketsCreatedBy(ctx context.Context, creatorID uint) (int64, error) {
	m.log.add("delete_comments_on_tickets")
	return 3, nil
}

func (m *mockCommentRepository) DeleteByAuthor(ctx context.Context, authorID uint) (int64, error) {
	m.log.add("delete_authored_comments")
	return 1, nil
}

type mockNotificationRepository struct {
	notification.NotificationRepository

	log *cascadeLog
}

func (m *mockNotificationRepository) DeleteByRecipient(ctx context.Context, recipientID uint) (int64, error) {
	m.log.add("delete_notifications")
	return 4, nil
}

type mockPhotoRemover struct {
	deleted   []string
	DeleteErr error
}

func (m *mockPhotoRemover) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return m.DeleteErr
}

type mockUnreadCache struct {
	invalidated []uint
}

func (m *mockUnreadCache) Invalidate(ctx context.Context, userID uint) error {
	m.invalidated = append(m.invalidated, userID)
	return nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockLogger struct {
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
