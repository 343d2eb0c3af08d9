package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/domain/notification"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	CreateFunc               func(ctx context.Context, n *notification.Notification) error
	ListByRecipientFunc      func(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc          func(ctx context.Context, recipientID uint) (int64, error)
	MarkAllReadForTicketFunc func(ctx context.Context, recipientID, ticketID uint) (int64, error)
	DeleteByRecipientFunc    func(ctx context.Context, recipientID uint) (int64, error)

	countCalls int
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	m.countCalls++
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) (int64, error) {
	if m.MarkAllReadForTicketFunc != nil {
		return m.MarkAllReadForTicketFunc(ctx, recipientID, ticketID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) DeleteByRecipient(ctx context.Context, recipientID uint) (int64, error) {
	if m.DeleteByRecipientFunc != nil {
		return m.DeleteByRecipientFunc(ctx, recipientID)
	}
	return 0, nil
}

// mockUnreadCountCache is an in-memory cache that records invalidations.
type mockUnreadCountCache struct {
	values      map[uint]int64
	invalidated []uint
	GetErr      error
}

func newMockUnreadCountCache() *mockUnreadCountCache {
	return &mockUnreadCountCache{values: make(map[uint]int64)}
}

func (m *mockUnreadCountCache) Get(ctx context.Context, userID uint) (int64, bool, error) {
	if m.GetErr != nil {
		return 0, false, m.GetErr
	}
	v, ok := m.values[userID]
	return v, ok, nil
}

func (m *mockUnreadCountCache) Set(ctx context.Context, userID uint, count int64) error {
	m.values[userID] = count
	return nil
}

func (m *mockUnreadCountCache) Invalidate(ctx context.Context, userID uint) error {
	delete(m.values, userID)
	m.invalidated = append(m.invalidated, userID)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
