package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/usecases"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// LoginRequest carries the display name and access code typed at login.
// Neither field is validated here; every mismatch must surface as
// InvalidCredentials from the use case.
type LoginRequest struct {
	DisplayName string `json:"display_name" form:"display_name"`
	AccessCode  string `json:"access_code" form:"access_code"`
}

func (r *LoginRequest) ToCommand() usecases.ResolveLoginCommand {
	return usecases.ResolveLoginCommand{
		DisplayName: r.DisplayName,
		AccessCode:  r.AccessCode,
	}
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        any    `json:"user"`
}

type CreateUserRequest struct {
	DisplayName string `json:"display_name"`
	AccessCode  string `json:"access_code"`
}

func (r *CreateUserRequest) ToCommand(actor authorization.Actor) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Actor:       actor,
		DisplayName: r.DisplayName,
		AccessCode:  r.AccessCode,
	}
}

// ParseListUsersRequest reads page, page_size and role from the query string.
func ParseListUsersRequest(c *gin.Context, actor authorization.Actor) usecases.ListUsersQuery {
	pagination := utils.ParsePagination(c)
	return usecases.ListUsersQuery{
		Actor:    actor,
		Role:     c.Query("role"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}

func ParseUserID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "user")
}
