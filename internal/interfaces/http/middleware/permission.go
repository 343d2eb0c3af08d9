package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// RoutePolicy decides whether a role may call method on a gin route pattern.
type RoutePolicy interface {
	Enforce(role, route, method string) (bool, error)
}

type PermissionMiddleware struct {
	policy RoutePolicy
	logger logger.Interface
}

func NewPermissionMiddleware(policy RoutePolicy, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		policy: policy,
		logger: logger,
	}
}

// RequireRoute must run after RequireAuth.
func (m *PermissionMiddleware) RequireRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := authorization.ActorFromContext(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}

		route := c.FullPath()
		allowed, err := m.policy.Enforce(actor.Role.String(), route, c.Request.Method)
		if err != nil {
			m.logger.Errorw("route policy check failed", "error", err, "user_id", actor.UserID, "route", route)
			utils.ErrorResponseWithError(c, errors.NewInternalError(constants.ErrMsgInternalServerError))
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("route denied", "user_id", actor.UserID, "role", actor.Role, "route", route, "method", c.Request.Method)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(constants.ErrMsgForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}
