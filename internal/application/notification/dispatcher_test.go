package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/application/notification/usecases"
	domainnotification "github.com/incidentdesk/incidentdesk/internal/domain/notification"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/notification/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/domain/shared/events"
	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	ticketvo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

type recordingRepo struct {
	created []*domainnotification.Notification
	fail    bool
}

func (r *recordingRepo) Create(ctx context.Context, n *domainnotification.Notification) error {
	if r.fail {
		return errors.New("insert failed")
	}
	r.created = append(r.created, n)
	return n.SetID(uint(len(r.created)))
}

func (r *recordingRepo) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*domainnotification.Notification, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *recordingRepo) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *recordingRepo) MarkAllReadForTicket(ctx context.Context, recipientID, ticketID uint) (int64, error) {
	return 0, nil
}

func (r *recordingRepo) DeleteByRecipient(ctx context.Context, recipientID uint) (int64, error) {
	return 0, nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, uint) (int64, bool, error) { return 0, false, nil }
func (noopCache) Set(context.Context, uint, int64) error         { return nil }
func (noopCache) Invalidate(context.Context, uint) error         { return nil }

type recorder struct {
	delivered map[string]int
	failed    map[string]int
}

func newRecorder() *recorder {
	return &recorder{delivered: map[string]int{}, failed: map[string]int{}}
}

func (r *recorder) RecordNotification(kind string, delivered bool) {
	if delivered {
		r.delivered[kind]++
		return
	}
	r.failed[kind]++
}

// ticketEvents drives a real ticket through an admin status change, an edit and a comment.
func ticketEvents(t *testing.T) []events.DomainEvent {
	t.Helper()
	admin := authorization.NewActor(1, authorization.RoleAdmin)
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(7, "0007", "Leak", "Pipe leak", ticketvo.StatusOpen,
		10, nil, nil, nil, false, now, now)
	require.NoError(t, err)

	_, err = tk.ChangeStatus(admin, ticketvo.StatusResolved, nil)
	require.NoError(t, err)
	title := "Big leak"
	_, err = tk.EditFields(admin, ticket.FieldEdits{Title: &title})
	require.NoError(t, err)
	_, err = tk.AddComment(admin, "9898", "plumber booked")
	require.NoError(t, err)

	return tk.PullEvents()
}

func TestDispatcher_MapsTicketEventsToNotifications(t *testing.T) {
	repo := &recordingRepo{}
	rec := newRecorder()
	log := logger.NewNopLogger()
	d := NewDispatcher(usecases.NewNotifyUseCase(repo, noopCache{}, log), rec, log)

	dispatcher := events.NewSyncEventDispatcher()
	require.NoError(t, d.Register(dispatcher))
	assert.Equal(t, 1, dispatcher.HandlerCount(ticket.EventTypeStatusChanged))

	require.NoError(t, dispatcher.PublishAll(context.Background(), ticketEvents(t)))

	require.Len(t, repo.created, 3)
	for _, n := range repo.created {
		assert.Equal(t, uint(10), n.RecipientID())
		assert.Equal(t, uint(7), n.TicketID())
		assert.False(t, n.IsRead())
	}
	assert.Equal(t, vo.KindStatusChanged, repo.created[0].Kind())
	assert.Equal(t, "ticket #0007 status changed to RESOLVED", repo.created[0].Message())
	assert.Equal(t, vo.KindFieldsEdited, repo.created[1].Kind())
	assert.Equal(t, vo.KindCommentAdded, repo.created[2].Kind())
	assert.Equal(t, 1, rec.delivered["StatusChanged"])
}

func TestDispatcher_SwallowsFailures(t *testing.T) {
	repo := &recordingRepo{fail: true}
	rec := newRecorder()
	log := logger.NewNopLogger()
	d := NewDispatcher(usecases.NewNotifyUseCase(repo, noopCache{}, log), rec, log)

	for _, e := range ticketEvents(t) {
		assert.NoError(t, d.Handle(context.Background(), e))
	}
	assert.Equal(t, 1, rec.failed["CommentAdded"])
	assert.Empty(t, rec.delivered)
}

func TestDispatcher_CanHandle(t *testing.T) {
	d := NewDispatcher(nil, nil, logger.NewNopLogger())

	assert.True(t, d.CanHandle(ticket.EventTypeCommentAdded))
	assert.False(t, d.CanHandle("user.deleted"))
}

func TestService_MarkAllReadForTicket(t *testing.T) {
	svc := NewService(&recordingRepo{}, noopCache{}, nil, logger.NewNopLogger())

	assert.NoError(t, svc.MarkAllReadForTicket(context.Background(), 10, 7))

	count, err := svc.UnreadCount(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestService_NotifyThenList(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, noopCache{}, nil, logger.NewNopLogger())
	ctx := context.Background()

	n, err := svc.Notify(ctx, usecases.NotifyCommand{
		RecipientID: 10,
		TicketID:    7,
		Kind:        vo.KindCommentAdded,
		Message:     "new comment on ticket #0007",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), n.ID())

	list, err := svc.ListNotifications(ctx, 10, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	_, err = svc.Notify(ctx, usecases.NotifyCommand{RecipientID: 10, TicketID: 7, Kind: "Reassigned", Message: "m"})
	assert.Error(t, err)
}
