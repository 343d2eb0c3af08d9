package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	notificationdto "github.com/incidentdesk/incidentdesk/internal/application/notification/dto"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/dto"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

// notificationService is the read side of notification.Service.
type notificationService interface {
	ListNotifications(ctx context.Context, recipientID uint, limit, offset int) (*notificationdto.ListNotificationsResponse, error)
	UnreadCount(ctx context.Context, userID uint) (*notificationdto.UnreadCountResponse, error)
}

type NotificationHandler struct {
	service notificationService
	logger  logger.Interface
}

func NewNotificationHandler(service notificationService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	req, err := dto.ParseListNotificationsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListNotifications(c.Request.Context(), actor.UserID, req.Limit, req.Offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	result, err := h.service.UnreadCount(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
