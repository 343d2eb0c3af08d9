package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/services/markdown"
)

func testUsers(t *testing.T) map[uint]*user.User {
	t.Helper()
	admin, err := user.ReconstructUser(adminActor.UserID, "ADMINISTRADOR", "9898", authorization.RoleAdmin, time.Now())
	require.NoError(t, err)
	creator, err := user.ReconstructUser(creatorActor.UserID, "Ana", "1234", authorization.RoleUser, time.Now())
	require.NoError(t, err)
	other, err := user.ReconstructUser(otherActor.UserID, "Luis", "5678", authorization.RoleUser, time.Now())
	require.NoError(t, err)
	return map[uint]*user.User{admin.ID(): admin, creator.ID(): creator, other.ID(): other}
}

func userRepoFor(users map[uint]*user.User) *mockUserRepository {
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return users[id], nil
		},
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			var out []*user.User
			for _, id := range ids {
				if u, ok := users[id]; ok {
					out = append(out, u)
				}
			}
			return out, nil
		},
	}
}

func ticketRepoWith(t *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			if id == t.ID() {
				return t, nil
			}
			return nil, nil
		},
	}
}

func TestAddCommentUseCase_Execute(t *testing.T) {
	users := testUsers(t)

	tests := []struct {
		name       string
		actor      authorization.Actor
		wantEvents int
	}{
		{name: "admin comment notifies creator", actor: adminActor, wantEvents: 1},
		{name: "creator comment on own ticket is silent", actor: creatorActor, wantEvents: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *ticket.Comment
			comments := &mockCommentRepository{
				SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
					saved = c
					return c.SetID(100)
				},
			}
			publisher := &mockEventPublisher{}
			uc := NewAddCommentUseCase(ticketRepoWith(existingTicket(vo.StatusOpen)), comments, userRepoFor(users),
				markdown.NewMarkdownService(), &mockTransactor{}, publisher, &mockLogger{})

			result, err := uc.Execute(context.Background(), AddCommentCommand{
				Actor: tt.actor, TicketID: 7, Text: "  **on my way**  ",
			})

			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, uint(100), result.ID)
			assert.Equal(t, "**on my way**", result.Text)
			assert.Equal(t, users[tt.actor.UserID].DisplayName(), result.AuthorDisplayName)
			assert.Contains(t, result.HTML, "<strong>on my way</strong>")
			assert.Equal(t, users[tt.actor.UserID].AccessCode(), saved.AuthorAccessCode())
			require.Len(t, publisher.published, tt.wantEvents)
			if tt.wantEvents > 0 {
				assert.Equal(t, ticket.EventTypeCommentAdded, publisher.published[0].GetEventType())
			}
		})
	}
}

func TestAddCommentUseCase_Execute_ErrorOrder(t *testing.T) {
	users := testUsers(t)
	tests := []struct {
		name       string
		actor      authorization.Actor
		ticketID   uint
		text       string
		wantReason apperrors.Reason
	}{
		{"blank text wins over unknown ticket", otherActor, 99, "   ", apperrors.ReasonEmptyComment},
		{"blank text wins over foreign ticket", otherActor, 7, "", apperrors.ReasonEmptyComment},
		{"unknown ticket wins over access", otherActor, 99, "hello", apperrors.ReasonNotFound},
		{"foreign ticket", otherActor, 7, "hello", apperrors.ReasonForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved bool
			comments := &mockCommentRepository{
				SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
					saved = true
					return nil
				},
			}
			uc := NewAddCommentUseCase(ticketRepoWith(existingTicket(vo.StatusOpen)), comments, userRepoFor(users),
				markdown.NewMarkdownService(), &mockTransactor{}, &mockEventPublisher{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), AddCommentCommand{
				Actor: tt.actor, TicketID: tt.ticketID, Text: tt.text,
			})

			assert.True(t, apperrors.HasReason(err, tt.wantReason), "got %v", err)
			assert.False(t, saved)
		})
	}
}

func TestListCommentsUseCase_Execute(t *testing.T) {
	users := testUsers(t)
	base := time.Now().UTC().Add(-time.Hour)

	first, err := ticket.ReconstructComment(1, 7, creatorActor.UserID, "1234", "it is leaking", base)
	require.NoError(t, err)
	second, err := ticket.ReconstructComment(2, 7, adminActor.UserID, "9898", "plumber _booked_", base.Add(time.Minute))
	require.NoError(t, err)
	orphan, err := ticket.ReconstructComment(3, 7, 77, "4321", "<script>alert(1)</script>thanks", base.Add(2*time.Minute))
	require.NoError(t, err)

	comments := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{first, second, orphan}, nil
		},
	}
	uc := NewListCommentsUseCase(ticketRepoWith(existingTicket(vo.StatusOpen)), comments, userRepoFor(users),
		markdown.NewMarkdownService(), &mockLogger{})

	t.Run("creator reads the thread", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: creatorActor, TicketID: 7})

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "Ana", result[0].AuthorDisplayName)
		assert.Equal(t, "ADMINISTRADOR", result[1].AuthorDisplayName)
		assert.Contains(t, result[1].HTML, "<em>booked</em>")
		assert.Equal(t, "User 4321", result[2].AuthorDisplayName)
		assert.NotContains(t, result[2].HTML, "<script>")
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: otherActor, TicketID: 7})

		assert.True(t, apperrors.HasReason(err, apperrors.ReasonForbidden))
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: adminActor, TicketID: 70})

		assert.True(t, apperrors.HasReason(err, apperrors.ReasonNotFound))
	})
}
