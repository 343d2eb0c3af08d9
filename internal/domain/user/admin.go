package user

import (
	"fmt"

	vo "github.com/incidentdesk/incidentdesk/internal/domain/user/valueobjects"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
)

const (
	DefaultAdminAccessCode  = "9898"
	DefaultAdminDisplayName = "ADMINISTRADOR"
)

// AdminIdentity is the reserved administrator credential pair. The code is
// never available to regular users; the name is matched case-insensitively,
// unlike regular user names.
type AdminIdentity struct {
	accessCode  vo.AccessCode
	displayName vo.DisplayName
}

func NewAdminIdentity(accessCode, displayName string) (AdminIdentity, error) {
	code, err := vo.NewAccessCode(accessCode)
	if err != nil {
		return AdminIdentity{}, fmt.Errorf("admin access code: %w", err)
	}
	name, err := vo.NewDisplayName(displayName)
	if err != nil {
		return AdminIdentity{}, fmt.Errorf("admin display name: %w", err)
	}
	return AdminIdentity{accessCode: code, displayName: name}, nil
}

func (a AdminIdentity) AccessCode() string {
	return a.accessCode.String()
}

func (a AdminIdentity) DisplayName() string {
	return a.displayName.String()
}

// IsReservedCode reports whether code belongs to the administrator.
func (a AdminIdentity) IsReservedCode(code string) bool {
	return a.accessCode.String() == code
}

// Authenticates reports whether displayName is accepted for the admin code.
func (a AdminIdentity) Authenticates(displayName string) bool {
	return a.displayName.MatchesFold(displayName)
}

// NewUser builds the administrator's directory row.
func (a AdminIdentity) NewUser() (*User, error) {
	return NewUser(a.displayName.String(), a.accessCode.String(), authorization.RoleAdmin)
}
