package dto

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/shared/mapper"
)

// UserDTO is a directory entry. The access code is included because the
// administrator hands it out; it is an identifier, not a secret.
type UserDTO struct {
	ID          uint      `json:"id"`
	DisplayName string    `json:"display_name"`
	AccessCode  string    `json:"access_code"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		DisplayName: u.DisplayName(),
		AccessCode:  u.AccessCode(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	out := mapper.MapSlice(users, ToUserDTO)
	if out == nil {
		return []*UserDTO{}
	}
	return out
}
