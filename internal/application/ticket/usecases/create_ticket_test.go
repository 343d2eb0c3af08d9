package usecases

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func newCreateTicketUseCase(repo *mockTicketRepository, zones *mockZoneRepository, photos *mockPhotoStore) *CreateTicketUseCase {
	return NewCreateTicketUseCase(repo, zones, ticket.NewSequentialReferenceAllocator(), photos, &mockTransactor{}, &mockLogger{})
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	repo := &mockTicketRepository{}
	uc := newCreateTicketUseCase(repo, &mockZoneRepository{}, &mockPhotoStore{})

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       creatorActor,
		Title:       "  Leak  ",
		Description: "Water under the sink",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Ticket)
	assert.Equal(t, uint(42), result.Ticket.ID)
	assert.Equal(t, "0042", result.Ticket.ReferenceNumber)
	assert.Equal(t, "Leak", result.Ticket.Title)
	assert.Equal(t, "Open", result.Ticket.Status)
	assert.Equal(t, creatorActor.UserID, result.Ticket.CreatorID)
	assert.Nil(t, result.Ticket.PhotoReference)
	assert.Nil(t, result.Ticket.RejectionReason)
	assert.False(t, result.Ticket.AcknowledgedByCreator)
	assert.Equal(t, 1, repo.updated, "reference is stamped in a second write")
}

func TestCreateTicketUseCase_Execute_WithZoneAndPhoto(t *testing.T) {
	z, err := zone.ReconstructZone(3, "Oficina Central", time.Now())
	require.NoError(t, err)

	zones := &mockZoneRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*zone.Zone, error) {
			if id == 3 {
				return z, nil
			}
			return nil, nil
		},
	}
	var gotName string
	photos := &mockPhotoStore{
		SaveFunc: func(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
			gotName = name
			return "tickets/abc_1700000000.jpg", nil
		},
	}
	uc := newCreateTicketUseCase(&mockTicketRepository{}, zones, photos)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       creatorActor,
		Title:       "Leak",
		Description: "Water under the sink",
		ZoneID:      uintPtr(3),
		Photo: &PhotoUpload{
			FileName:    "sink.JPG",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("jpeg-bytes"),
			Size:        10,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "sink.JPG", gotName)
	require.NotNil(t, result.Ticket.ZoneID)
	assert.Equal(t, uint(3), *result.Ticket.ZoneID)
	require.NotNil(t, result.Ticket.PhotoReference)
	assert.Equal(t, "tickets/abc_1700000000.jpg", *result.Ticket.PhotoReference)
}

func TestCreateTicketUseCase_Execute_PhotoFailureStillCreatesTicket(t *testing.T) {
	photos := &mockPhotoStore{
		SaveFunc: func(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
			return "", errors.New("bucket unreachable")
		},
	}
	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockZoneRepository{}, photos)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       creatorActor,
		Title:       "Leak",
		Description: "Water under the sink",
		Photo:       &PhotoUpload{FileName: "a.png", Body: strings.NewReader("x"), Size: 1},
	})

	require.NoError(t, err)
	assert.Nil(t, result.Ticket.PhotoReference)
}

func TestCreateTicketUseCase_Execute_PersistFailureRemovesPhoto(t *testing.T) {
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.New("disk full")
		},
	}
	photos := &mockPhotoStore{}
	uc := newCreateTicketUseCase(repo, &mockZoneRepository{}, photos)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       creatorActor,
		Title:       "Leak",
		Description: "Water under the sink",
		Photo:       &PhotoUpload{FileName: "a.png", Body: strings.NewReader("x"), Size: 1},
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
	assert.Equal(t, []string{"tickets/photo_1.jpg"}, photos.deleted)
}

func TestCreateTicketUseCase_Execute_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		cmd        CreateTicketCommand
		wantReason apperrors.Reason
	}{
		{
			name:       "admin cannot open tickets",
			cmd:        CreateTicketCommand{Actor: adminActor, Title: "Leak", Description: "Pipe"},
			wantReason: apperrors.ReasonForbidden,
		},
		{
			name:       "blank title",
			cmd:        CreateTicketCommand{Actor: creatorActor, Title: "   ", Description: "Pipe"},
			wantReason: apperrors.ReasonMissingField,
		},
		{
			name:       "blank description",
			cmd:        CreateTicketCommand{Actor: creatorActor, Title: "Leak", Description: ""},
			wantReason: apperrors.ReasonMissingField,
		},
		{
			name:       "unknown zone",
			cmd:        CreateTicketCommand{Actor: creatorActor, Title: "Leak", Description: "Pipe", ZoneID: uintPtr(99)},
			wantReason: apperrors.ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved bool
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					saved = true
					return nil
				},
			}
			photos := &mockPhotoStore{}
			uc := newCreateTicketUseCase(repo, &mockZoneRepository{}, photos)

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.HasReason(err, tt.wantReason), "got %v", err)
			assert.False(t, saved)
		})
	}
}
