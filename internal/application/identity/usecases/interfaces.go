package usecases

import (
	"context"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/dto"
)

type ResolveLoginExecutor interface {
	Execute(ctx context.Context, cmd ResolveLoginCommand) (*ResolveLoginResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error)
}

// PhotoRemover deletes stored ticket photos by key.
type PhotoRemover interface {
	Delete(ctx context.Context, key string) error
}

// UnreadCountInvalidator drops a cached unread badge.
type UnreadCountInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}
