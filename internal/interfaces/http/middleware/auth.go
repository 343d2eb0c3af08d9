package middleware

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/incidentdesk/incidentdesk/internal/domain/user"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/auth"
	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// UserLookup is the subset of user.Repository the middleware needs.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserLookup
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, users UserLookup, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and reloads the user, so a deleted
// account is locked out even while its token is still valid. The role placed
// in the context comes from the directory, not from the token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing or malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			authErr := tokenError(err)
			if errors.IsSecurityEvent(authErr) {
				m.logger.Warnw("failed to verify token", "client_ip", c.ClientIP(), "error", err)
			}
			utils.ErrorResponseWithError(c, authErr)
			c.Abort()
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load token user", "user_id", claims.UserID, "error", err)
			utils.ErrorResponseWithError(c, errors.NewInternalError(constants.ErrMsgInternalServerError))
			c.Abort()
			return
		}
		if u == nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("account no longer exists"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}

func tokenError(err error) *errors.AuthError {
	if stderrors.Is(err, jwt.ErrTokenExpired) {
		return errors.NewTokenExpiredError("access token")
	}
	return errors.NewTokenInvalidError("access token")
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
