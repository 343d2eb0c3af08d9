package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		authorID uint
		text     string
		wantErr  bool
	}{
		{"valid comment", 1, 2, "The valve was replaced", false},
		{"zero ticket ID", 0, 2, "Test", true},
		{"zero author ID", 1, 0, "Test", true},
		{"blank text", 1, 2, "  ", true},
		{"text too long", 1, 2, strings.Repeat("a", maxCommentLength+1), true},
		{"text at max length", 1, 2, strings.Repeat("a", maxCommentLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.authorID, "0042", tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ticketID, c.TicketID())
			assert.Equal(t, tt.authorID, c.AuthorID())
			assert.Equal(t, "0042", c.AuthorAccessCode())
			assert.False(t, c.CreatedAt().IsZero())
		})
	}
}

func TestNewComment_BlankIsEmptyComment(t *testing.T) {
	_, err := NewComment(1, 2, "0042", "\t")
	assert.True(t, errors.HasReason(err, errors.ReasonEmptyComment))
}

func TestComment_SetID(t *testing.T) {
	c, err := NewComment(1, 2, "0042", "hi")
	require.NoError(t, err)

	require.Error(t, c.SetID(0))
	require.NoError(t, c.SetID(5))
	assert.Equal(t, uint(5), c.ID())
	assert.Error(t, c.SetID(6))
}

func TestReconstructComment(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	c, err := ReconstructComment(3, 1, 2, "0042", "hi", at)

	require.NoError(t, err)
	assert.Equal(t, uint(3), c.ID())
	assert.Equal(t, at, c.CreatedAt())
	assert.Equal(t, "User 0042", c.FallbackAuthorLabel())

	_, err = ReconstructComment(0, 1, 2, "0042", "hi", at)
	assert.Error(t, err)
}

func TestSequentialReferenceAllocator(t *testing.T) {
	alloc := NewSequentialReferenceAllocator()

	tests := []struct {
		id   uint
		want string
	}{
		{1, "0001"},
		{7, "0007"},
		{42, "0042"},
		{9999, "9999"},
		{10000, "10000"},
	}
	for _, tt := range tests {
		got, err := alloc.Allocate(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := alloc.Allocate(0)
	assert.Error(t, err)
}
