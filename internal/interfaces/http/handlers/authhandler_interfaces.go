package handlers

import (
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/auth"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
)

// tokenIssuer signs access tokens for resolved logins.
type tokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*auth.Token, error)
}

// loginRecorder counts login outcomes. *metrics.Metrics satisfies it.
type loginRecorder interface {
	RecordLogin(result string)
}
