package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/application/identity/usecases"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/dto"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	deleteUserUC usecases.DeleteUserExecutor
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		deleteUserUC: deleteUserUC,
		logger:       logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), dto.ParseListUsersRequest(c, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	userID, err := dto.ParseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{Actor: actor, UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Deleted {
		utils.SuccessResponse(c, http.StatusOK, "Administrator cannot be deleted", result)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", result)
}
