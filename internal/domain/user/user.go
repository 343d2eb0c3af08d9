package user

import (
	"fmt"
	"time"

	vo "github.com/incidentdesk/incidentdesk/internal/domain/user/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/biztime"
)

// User is a person known to the directory: either the single administrator
// or a regular user who opens tickets.
type User struct {
	id          uint
	displayName vo.DisplayName
	accessCode  vo.AccessCode
	role        authorization.UserRole
	createdAt   time.Time
}

func NewUser(displayName, accessCode string, role authorization.UserRole) (*User, error) {
	name, err := vo.NewDisplayName(displayName)
	if err != nil {
		return nil, err
	}
	code, err := vo.NewAccessCode(accessCode)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		displayName: name,
		accessCode:  code,
		role:        role,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructUser rebuilds a persisted user without re-validating its fields.
func ReconstructUser(id uint, displayName, accessCode string, role authorization.UserRole, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	name, err := vo.NewDisplayName(displayName)
	if err != nil {
		return nil, fmt.Errorf("stored user %d has no display name", id)
	}
	return &User{
		id:          id,
		displayName: name,
		accessCode:  vo.AccessCode{}.WithRaw(accessCode),
		role:        authorization.ParseUserRole(string(role)),
		createdAt:   createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) DisplayName() string {
	return u.displayName.String()
}

func (u *User) AccessCode() string {
	return u.accessCode.String()
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Authenticates reports whether displayName matches the stored name exactly.
func (u *User) Authenticates(displayName string) bool {
	return u.displayName.Matches(displayName)
}

// Actor returns the identity context for operations performed by this user.
func (u *User) Actor() authorization.Actor {
	return authorization.NewActor(u.id, u.role)
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
