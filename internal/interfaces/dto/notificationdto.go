package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type ListNotificationsRequest struct {
	Limit  int `json:"limit" validate:"min=1,max=100"`
	Offset int `json:"offset" validate:"min=0"`
}

func ParseListNotificationsRequest(c *gin.Context) (*ListNotificationsRequest, error) {
	req := &ListNotificationsRequest{
		Limit:  20,
		Offset: 0,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return nil, errors.NewValidationError("Invalid limit parameter", limitStr)
		}
		if limit > 100 {
			limit = 100
		}
		req.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return nil, errors.NewValidationError("Invalid offset parameter", offsetStr)
		}
		req.Offset = offset
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}
