package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name       string
		display    string
		code       string
		role       authorization.UserRole
		wantReason errors.Reason
		wantErr    bool
	}{
		{"valid user", "Ana", "0042", authorization.RoleUser, "", false},
		{"missing name", "  ", "0042", authorization.RoleUser, errors.ReasonMissingName, true},
		{"short code", "Ana", "42", authorization.RoleUser, errors.ReasonInvalidAccessCode, true},
		{"letters in code", "Ana", "00a2", authorization.RoleUser, errors.ReasonInvalidAccessCode, true},
		{"invalid role", "Ana", "0042", authorization.UserRole("guest"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.display, tt.code, tt.role)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantReason != "" {
					assert.True(t, errors.HasReason(err, tt.wantReason), "got %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", u.DisplayName())
			assert.Equal(t, "0042", u.AccessCode())
			assert.Equal(t, tt.role, u.Role())
		})
	}
}

func TestUser_ActorAndSetID(t *testing.T) {
	u, err := NewUser("Ana", "0042", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.SetID(5))
	assert.Error(t, u.SetID(6))
	assert.Equal(t, authorization.NewActor(5, authorization.RoleUser), u.Actor())
}

func TestUser_AuthenticatesIsCaseSensitive(t *testing.T) {
	u, err := ReconstructUser(5, "Ana", "0042", authorization.RoleUser, time.Now())
	require.NoError(t, err)

	assert.True(t, u.Authenticates("Ana"))
	assert.False(t, u.Authenticates("ana"))
	assert.False(t, u.Authenticates("Ana "))
}

func TestAdminIdentity(t *testing.T) {
	admin, err := NewAdminIdentity(DefaultAdminAccessCode, DefaultAdminDisplayName)
	require.NoError(t, err)

	assert.True(t, admin.IsReservedCode("9898"))
	assert.False(t, admin.IsReservedCode("9899"))
	assert.True(t, admin.Authenticates("ADMINISTRADOR"))
	assert.True(t, admin.Authenticates("administrador"))
	assert.False(t, admin.Authenticates("admin"))

	u, err := admin.NewUser()
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
	assert.Equal(t, "9898", u.AccessCode())
}

func TestNewAdminIdentity_RejectsMalformedCode(t *testing.T) {
	_, err := NewAdminIdentity("98", "ADMIN")
	assert.Error(t, err)
}
