package permission

import (
	"fmt"

	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
)

// defaultPolicies lists the route grants per role. Admins inherit every user
// grant; ownership and per-operation rules are still enforced by the domain.
var defaultPolicies = [][]string{
	{authorization.RoleUser.String(), "/auth/me", "GET"},
	{authorization.RoleUser.String(), "/zones", "GET"},
	{authorization.RoleUser.String(), "/tickets", "(GET)|(POST)"},
	{authorization.RoleUser.String(), "/tickets/:id", "GET"},
	{authorization.RoleUser.String(), "/tickets/:id/acknowledge", "POST"},
	{authorization.RoleUser.String(), "/tickets/:id/comments", "(GET)|(POST)"},
	{authorization.RoleUser.String(), "/notifications", "GET"},
	{authorization.RoleUser.String(), "/notifications/unread-count", "GET"},

	{authorization.RoleAdmin.String(), "/users", "(GET)|(POST)"},
	{authorization.RoleAdmin.String(), "/users/:id", "DELETE"},
	{authorization.RoleAdmin.String(), "/zones", "POST"},
	{authorization.RoleAdmin.String(), "/zones/:id", "DELETE"},
	{authorization.RoleAdmin.String(), "/tickets/:id", "PATCH"},
	{authorization.RoleAdmin.String(), "/tickets/:id/status", "PATCH"},
}

// SeedDefaultPolicies installs the default grants. Existing rules are kept,
// so the call is safe on every start.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, policy := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add route policy",
				"error", err,
				"role", policy[0],
				"route", policy[1],
				"method", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if _, err := e.enforcer.AddGroupingPolicy(authorization.RoleAdmin.String(), authorization.RoleUser.String()); err != nil {
		return fmt.Errorf("failed to add admin role inheritance: %w", err)
	}

	e.logger.Infow("route policies seeded", "count", len(defaultPolicies))
	return nil
}
