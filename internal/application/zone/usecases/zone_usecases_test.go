package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

var (
	adminActor = authorization.NewActor(1, authorization.RoleAdmin)
	userActor  = authorization.NewActor(10, authorization.RoleUser)
)

func TestCreateZoneUseCase_Execute(t *testing.T) {
	repo := newMockZoneRepository()
	uc := NewCreateZoneUseCase(repo, &mockLogger{})

	first, err := uc.Execute(context.Background(), CreateZoneCommand{Actor: adminActor, Name: "  Kitchen "})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "Kitchen", first.Zone.Name)

	again, err := uc.Execute(context.Background(), CreateZoneCommand{Actor: adminActor, Name: "Kitchen"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.Zone.ID, again.Zone.ID)
	assert.Len(t, repo.zones, 1)
}

func TestCreateZoneUseCase_Execute_Rejected(t *testing.T) {
	uc := NewCreateZoneUseCase(newMockZoneRepository(), &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateZoneCommand{Actor: userActor, Name: "Kitchen"})
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonForbidden))

	_, err = uc.Execute(context.Background(), CreateZoneCommand{Actor: adminActor, Name: "   "})
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonMissingField))
}

func TestCreateZoneUseCase_Execute_LostRaceReturnsWinner(t *testing.T) {
	repo := newMockZoneRepository()
	winner, err := zone.NewZone("Lobby")
	require.NoError(t, err)

	repo.CreateFunc = func(ctx context.Context, z *zone.Zone) error {
		// Another request inserted the same name between lookup and insert.
		require.NoError(t, winner.SetID(5))
		repo.zones[5] = winner
		return apperrors.NewConflictError("zone already exists", z.Name())
	}
	uc := NewCreateZoneUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateZoneCommand{Actor: adminActor, Name: "Lobby"})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, uint(5), result.Zone.ID)
}

func TestDeleteZoneUseCase_Execute(t *testing.T) {
	repo := newMockZoneRepository()
	z, err := zone.NewZone("Kitchen")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), z))

	tickets := &mockTicketRepository{
		DetachZoneFunc: func(ctx context.Context, zoneID uint) (int64, error) { return 3, nil },
	}
	uc := NewDeleteZoneUseCase(repo, tickets, &mockTransactor{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteZoneCommand{Actor: adminActor, ZoneID: z.ID()})

	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, int64(3), result.DetachedTickets)
	assert.Equal(t, []uint{z.ID()}, tickets.detached)
	assert.Empty(t, repo.zones)
}

func TestDeleteZoneUseCase_Execute_MissingZoneIsNoop(t *testing.T) {
	tickets := &mockTicketRepository{}
	uc := NewDeleteZoneUseCase(newMockZoneRepository(), tickets, &mockTransactor{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteZoneCommand{Actor: adminActor, ZoneID: 99})

	require.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.Empty(t, tickets.detached)
}

func TestDeleteZoneUseCase_Execute_DetachFailureRollsBack(t *testing.T) {
	repo := newMockZoneRepository()
	z, err := zone.NewZone("Kitchen")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), z))

	tickets := &mockTicketRepository{
		DetachZoneFunc: func(ctx context.Context, zoneID uint) (int64, error) { return 0, errRollback },
	}
	tx := &mockTransactor{}
	uc := NewDeleteZoneUseCase(repo, tickets, tx, &mockLogger{})

	_, err = uc.Execute(context.Background(), DeleteZoneCommand{Actor: adminActor, ZoneID: z.ID()})

	require.Error(t, err)
	assert.True(t, tx.failed)
	assert.Len(t, repo.zones, 1)
}

func TestDeleteZoneUseCase_Execute_RequiresAdmin(t *testing.T) {
	uc := NewDeleteZoneUseCase(newMockZoneRepository(), &mockTicketRepository{}, &mockTransactor{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteZoneCommand{Actor: userActor, ZoneID: 1})

	assert.True(t, apperrors.HasReason(err, apperrors.ReasonForbidden))
}

func TestListZonesAndEnsureDefaults(t *testing.T) {
	repo := newMockZoneRepository()
	ensure := NewEnsureDefaultZonesUseCase(repo, &mockLogger{})

	created, err := ensure.Execute(context.Background(), []string{"Oficina Central", "Bodega"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = ensure.Execute(context.Background(), []string{"Oficina Central"})
	require.NoError(t, err)
	assert.Zero(t, created)

	zones, err := NewListZonesUseCase(repo, &mockLogger{}).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "Oficina Central", zones[0].Name)

	_, err = ensure.Execute(context.Background(), []string{" "})
	assert.Error(t, err)
}
