package user

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
)

// Repository defines the interface for user persistence
type Repository interface {
	Create(ctx context.Context, user *User) error
	// GetByID returns nil, nil when no user has the id.
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	// GetByAccessCode returns nil, nil when the code is unassigned.
	GetByAccessCode(ctx context.Context, code string) (*User, error)
	ExistsByAccessCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Delete(ctx context.Context, id uint) error
}

// ListFilter narrows a user listing
type ListFilter struct {
	Role     *authorization.UserRole
	Page     int
	PageSize int
}
