package valueobjects

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
)

const maxDisplayNameLength = 100

// DisplayName is the name a person types at login next to their access code.
type DisplayName struct {
	value string
}

func NewDisplayName(value string) (DisplayName, error) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return DisplayName{}, errors.NewMissingNameError()
	}
	if utf8.RuneCountInString(normalized) > maxDisplayNameLength {
		return DisplayName{}, errors.NewValidationError("display name cannot exceed 100 characters", value)
	}
	return DisplayName{value: normalized}, nil
}

func (n DisplayName) String() string {
	return n.value
}

// Matches compares exactly, as typed.
func (n DisplayName) Matches(candidate string) bool {
	return n.value == candidate
}

// MatchesFold compares under Unicode case folding.
func (n DisplayName) MatchesFold(candidate string) bool {
	// Casers are stateful; never share one across goroutines.
	folder := cases.Fold()
	return folder.String(n.value) == folder.String(strings.TrimSpace(candidate))
}
