package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	zonedto "github.com/incidentdesk/incidentdesk/internal/application/zone/dto"
	"github.com/incidentdesk/incidentdesk/internal/application/zone/usecases"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/dto"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type createZoneExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateZoneCommand) (*usecases.CreateZoneResult, error)
}

type deleteZoneExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteZoneCommand) (*usecases.DeleteZoneResult, error)
}

type listZonesExecutor interface {
	Execute(ctx context.Context) ([]zonedto.ZoneDTO, error)
}

type ZoneHandler struct {
	createZoneUC createZoneExecutor
	deleteZoneUC deleteZoneExecutor
	listZonesUC  listZonesExecutor
	logger       logger.Interface
}

func NewZoneHandler(
	createZoneUC createZoneExecutor,
	deleteZoneUC deleteZoneExecutor,
	listZonesUC listZonesExecutor,
	logger logger.Interface,
) *ZoneHandler {
	return &ZoneHandler{
		createZoneUC: createZoneUC,
		deleteZoneUC: deleteZoneUC,
		listZonesUC:  listZonesUC,
		logger:       logger,
	}
}

// ListZones handles GET /zones
func (h *ZoneHandler) ListZones(c *gin.Context) {
	result, err := h.listZonesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateZone handles POST /zones. An existing name answers 200 with the
// existing zone instead of 201.
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create zone", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.createZoneUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Created {
		utils.SuccessResponse(c, http.StatusOK, "Zone already exists", result.Zone)
		return
	}
	utils.CreatedResponse(c, result.Zone, "Zone created successfully")
}

// DeleteZone handles DELETE /zones/:id
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	zoneID, err := dto.ParseZoneID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteZoneUC.Execute(c.Request.Context(), usecases.DeleteZoneCommand{Actor: actor, ZoneID: zoneID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Zone deleted successfully", result)
}
