package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/application/zone/usecases"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type CreateZoneRequest struct {
	Name string `json:"name"`
}

func (r *CreateZoneRequest) ToCommand(actor authorization.Actor) usecases.CreateZoneCommand {
	return usecases.CreateZoneCommand{Actor: actor, Name: r.Name}
}

func ParseZoneID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "zone")
}
