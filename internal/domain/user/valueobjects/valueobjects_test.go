package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func TestNewAccessCode(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0000", false},
		{"1234", false},
		{"123", true},
		{"12345", true},
		{"12 4", true},
		{"abcd", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, err := NewAccessCode(tt.input)
			if tt.wantErr {
				assert.True(t, errors.HasReason(err, errors.ReasonInvalidAccessCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, code.String())
		})
	}
}

func TestNewDisplayName(t *testing.T) {
	name, err := NewDisplayName("  Ana Pérez ")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", name.String())

	_, err = NewDisplayName("   ")
	assert.True(t, errors.HasReason(err, errors.ReasonMissingName))
}

func TestDisplayName_Matching(t *testing.T) {
	name, err := NewDisplayName("ADMINISTRADOR")
	require.NoError(t, err)

	assert.True(t, name.Matches("ADMINISTRADOR"))
	assert.False(t, name.Matches("administrador"))
	assert.True(t, name.MatchesFold("administrador"))
	assert.True(t, name.MatchesFold("Administrador "))
	assert.False(t, name.MatchesFold("admin"))

	street, err := NewDisplayName("Straße")
	require.NoError(t, err)
	assert.True(t, street.MatchesFold("STRASSE"), "full case folding")
}
