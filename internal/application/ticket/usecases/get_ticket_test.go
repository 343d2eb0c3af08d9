package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	vo "github.com/incidentdesk/incidentdesk/internal/domain/ticket/valueobjects"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	existing := existingTicket(vo.StatusInProgress)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			if id == 7 {
				return existing, nil
			}
			return nil, nil
		},
	}

	t.Run("creator read marks notifications read", func(t *testing.T) {
		var gotRecipient, gotTicket uint
		marker := &mockReadMarker{
			MarkAllReadForTicketFunc: func(ctx context.Context, recipientID, ticketID uint) error {
				gotRecipient, gotTicket = recipientID, ticketID
				return nil
			},
		}
		uc := NewGetTicketUseCase(repo, marker, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetTicketQuery{Actor: creatorActor, TicketID: 7})

		require.NoError(t, err)
		assert.Equal(t, "0007", result.ReferenceNumber)
		assert.Equal(t, 1, marker.calls)
		assert.Equal(t, creatorActor.UserID, gotRecipient)
		assert.Equal(t, uint(7), gotTicket)
	})

	t.Run("admin read leaves notifications alone", func(t *testing.T) {
		marker := &mockReadMarker{}
		uc := NewGetTicketUseCase(repo, marker, &mockLogger{})

		_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 7})

		require.NoError(t, err)
		assert.Zero(t, marker.calls)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		marker := &mockReadMarker{}
		uc := NewGetTicketUseCase(repo, marker, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetTicketQuery{Actor: otherActor, TicketID: 7})

		assert.Nil(t, result)
		assert.True(t, apperrors.HasReason(err, apperrors.ReasonForbidden))
		assert.Zero(t, marker.calls)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		uc := NewGetTicketUseCase(repo, &mockReadMarker{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 8})

		assert.True(t, apperrors.HasReason(err, apperrors.ReasonNotFound))
	})

	t.Run("mark read failure does not fail the read", func(t *testing.T) {
		marker := &mockReadMarker{
			MarkAllReadForTicketFunc: func(ctx context.Context, recipientID, ticketID uint) error {
				return errors.New("locked")
			},
		}
		uc := NewGetTicketUseCase(repo, marker, &mockLogger{})

		result, err := uc.Execute(context.Background(), GetTicketQuery{Actor: creatorActor, TicketID: 7})

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	var gotFilter ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return []*ticket.Ticket{existingTicket(vo.StatusOpen)}, 1, nil
		},
	}
	uc := NewListTicketsUseCase(repo, &mockLogger{})

	t.Run("user sees only own tickets", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: creatorActor})

		require.NoError(t, err)
		require.NotNil(t, gotFilter.CreatorID)
		assert.Equal(t, creatorActor.UserID, *gotFilter.CreatorID)
		assert.Equal(t, int64(1), result.Total)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 20, result.PageSize)
		require.Len(t, result.Tickets, 1)
		assert.Equal(t, "0007", result.Tickets[0].ReferenceNumber)
	})

	t.Run("admin sees everything filtered by status and zone", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTicketsQuery{
			Actor:    adminActor,
			Status:   "Resolved",
			ZoneID:   uintPtr(2),
			Page:     2,
			PageSize: 500,
		})

		require.NoError(t, err)
		assert.Nil(t, gotFilter.CreatorID)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, vo.StatusResolved, *gotFilter.Status)
		assert.Equal(t, uint(2), *gotFilter.ZoneID)
		assert.Equal(t, 2, gotFilter.Page)
		assert.Equal(t, 100, gotFilter.PageSize)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: adminActor, Status: "Pending"})

		assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidStatus))
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		empty := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

		result, err := empty.Execute(context.Background(), ListTicketsQuery{Actor: creatorActor})

		require.NoError(t, err)
		assert.NotNil(t, result.Tickets)
		assert.Empty(t, result.Tickets)
	})
}
