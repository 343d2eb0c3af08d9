package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identitydto "github.com/incidentdesk/incidentdesk/internal/application/identity/dto"
	"github.com/incidentdesk/incidentdesk/internal/application/identity/usecases"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/dto"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC   usecases.ResolveLoginExecutor
	getUserUC usecases.GetUserExecutor
	tokens    tokenIssuer
	recorder  loginRecorder
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC usecases.ResolveLoginExecutor,
	getUserUC usecases.GetUserExecutor,
	tokens tokenIssuer,
	recorder loginRecorder,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		getUserUC: getUserUC,
		tokens:    tokens,
		recorder:  recorder,
		logger:    logger,
	}
}

// Login handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Resolve a display name and access code and issue a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Display name and access code"
//	@Success		200			{object}	utils.APIResponse	"Login successful"
//	@Failure		401			{object}	utils.APIResponse	"InvalidCredentials"
//	@Failure		429			{object}	utils.APIResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.HasReason(err, errors.ReasonInvalidCredentials) {
			h.recorder.RecordLogin("rejected")
		} else {
			h.recorder.RecordLogin("error")
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.tokens.Generate(result.User.ID(), result.User.Role())
	if err != nil {
		h.logger.Errorw("failed to issue access token", "user_id", result.User.ID(), "error", err)
		h.recorder.RecordLogin("error")
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to issue access token"))
		return
	}

	h.recorder.RecordLogin("accepted")
	utils.SuccessResponse(c, http.StatusOK, "Login successful", dto.LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
		User:        identitydto.ToUserDTO(result.User),
	})
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
