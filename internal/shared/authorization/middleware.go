package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// ActorFromContext returns the actor placed in the gin context by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Actor{}, false
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return Actor{}, false
	}
	role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return NewActor(id, role), true
}

// RequireActor returns the actor or writes 401 and reports false.
func RequireActor(c *gin.Context) (Actor, bool) {
	actor, ok := ActorFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		c.Abort()
	}
	return actor, ok
}
