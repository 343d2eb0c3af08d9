package zone

import "context"

type Repository interface {
	Create(ctx context.Context, zone *Zone) error
	// GetByID returns nil, nil when the zone does not exist.
	GetByID(ctx context.Context, id uint) (*Zone, error)
	// GetByName returns nil, nil when no zone has the name.
	GetByName(ctx context.Context, name string) (*Zone, error)
	List(ctx context.Context) ([]*Zone, error)
	Delete(ctx context.Context, id uint) error
}
