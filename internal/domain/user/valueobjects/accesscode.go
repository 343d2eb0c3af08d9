package valueobjects

import (
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// AccessCode is the 4-digit numeric code a person logs in with.
// It is an identifier, not a secret.
type AccessCode struct {
	value string
}

func NewAccessCode(value string) (AccessCode, error) {
	if !utils.IsAccessCode(value) {
		return AccessCode{}, errors.NewInvalidAccessCodeError(value)
	}
	return AccessCode{value: value}, nil
}

func (c AccessCode) String() string {
	return c.value
}

// WithRaw wraps an already-persisted code without validation.
func (AccessCode) WithRaw(value string) AccessCode {
	return AccessCode{value: value}
}
