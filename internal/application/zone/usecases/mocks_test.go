package usecases

import (
	"context"
	"errors"

	"github.com/incidentdesk/incidentdesk/internal/domain/ticket"
	"github.com/incidentdesk/incidentdesk/internal/domain/zone"
	apperrors "github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

// mockZoneRepository keeps zones in memory keyed by id.
type mockZoneRepository struct {
	zones  map[uint]*zone.Zone
	nextID uint

	CreateFunc func(ctx context.Context, z *zone.Zone) error
	ListErr    error
}

func newMockZoneRepository() *mockZoneRepository {
	return &mockZoneRepository{zones: make(map[uint]*zone.Zone), nextID: 1}
}

func (m *mockZoneRepository) Create(ctx context.Context, z *zone.Zone) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, z)
	}
	for _, existing := range m.zones {
		if existing.Name() == z.Name() {
			return apperrors.NewConflictError("zone already exists", z.Name())
		}
	}
	if err := z.SetID(m.nextID); err != nil {
		return err
	}
	m.zones[m.nextID] = z
	m.nextID++
	return nil
}

func (m *mockZoneRepository) GetByID(ctx context.Context, id uint) (*zone.Zone, error) {
	return m.zones[id], nil
}

func (m *mockZoneRepository) GetByName(ctx context.Context, name string) (*zone.Zone, error) {
	for _, z := range m.zones {
		if z.Name() == name {
			return z, nil
		}
	}
	return nil, nil
}

func (m *mockZoneRepository) List(ctx context.Context) ([]*zone.Zone, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*zone.Zone, 0, len(m.zones))
	for id := uint(1); id < m.nextID; id++ {
		if z, ok := m.zones[id]; ok {
			out = append(out, z)
		}
	}
	return out, nil
}

func (m *mockZoneRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.zones[id]; !ok {
		return apperrors.NewNotFoundError("zone not found")
	}
	delete(m.zones, id)
	return nil
}

type mockTicketRepository struct {
	ticket.TicketRepository

	DetachZoneFunc func(ctx context.Context, zoneID uint) (int64, error)
	detached       []uint
}

func (m *mockTicketRepository) DetachZone(ctx context.Context, zoneID uint) (int64, error) {
	m.detached = append(m.detached, zoneID)
	if m.DetachZoneFunc != nil {
		return m.DetachZoneFunc(ctx, zoneID)
	}
	return 0, nil
}

var errRollback = errors.New("rolled back")

// mockTransactor runs fn inline and reports whether the last call failed.
type mockTransactor struct {
	failed bool
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	m.failed = err != nil
	return err
}

type mockLogger struct{}

func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
