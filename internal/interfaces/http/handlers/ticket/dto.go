package ticket

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/usecases"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

const photoField = "photo"

// CreateTicketRequest is accepted as JSON or as a multipart form with an
// optional "photo" file part.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ZoneID      *uint  `json:"zone_id"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor, photo *usecases.PhotoUpload) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		ZoneID:      r.ZoneID,
		Photo:       photo,
	}
}

// attachedPhoto is an opened multipart file that must be closed once the
// use case has consumed it.
type attachedPhoto struct {
	upload *usecases.PhotoUpload
	file   multipart.File
}

func (p *attachedPhoto) Close() {
	if p != nil && p.file != nil {
		_ = p.file.Close()
	}
}

func parseCreateTicketRequest(c *gin.Context) (*CreateTicketRequest, *attachedPhoto, error) {
	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		var req CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, nil, errors.NewBadRequestError("invalid request body", err.Error())
		}
		return &req, nil, nil
	}

	req := &CreateTicketRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	zoneID, err := parseOptionalUint(c.PostForm("zone_id"), "zone_id")
	if err != nil {
		return nil, nil, err
	}
	req.ZoneID = zoneID

	header, err := c.FormFile(photoField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return req, nil, nil
		}
		return nil, nil, errors.NewBadRequestError("invalid photo upload", err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.NewBadRequestError("invalid photo upload", err.Error())
	}

	return req, &attachedPhoto{
		upload: &usecases.PhotoUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
			Size:        header.Size,
		},
		file: file,
	}, nil
}

// ChangeStatusRequest accepts the legacy "estado" field as an alias of "status".
type ChangeStatusRequest struct {
	Status          string  `json:"status" form:"status"`
	Estado          string  `json:"estado" form:"estado"`
	RejectionReason *string `json:"rejection_reason" form:"rejection_reason"`
}

func (r *ChangeStatusRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.ChangeStatusCommand {
	status := r.Status
	if status == "" {
		status = r.Estado
	}
	return usecases.ChangeStatusCommand{
		Actor:           actor,
		TicketID:        ticketID,
		Status:          status,
		RejectionReason: r.RejectionReason,
	}
}

// AddCommentRequest accepts the legacy "texto" field as an alias of "text".
type AddCommentRequest struct {
	Text  string `json:"text" form:"text"`
	Texto string `json:"texto" form:"texto"`
}

func (r *AddCommentRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.AddCommentCommand {
	text := r.Text
	if text == "" {
		text = r.Texto
	}
	return usecases.AddCommentCommand{
		Actor:    actor,
		TicketID: ticketID,
		Text:     text,
	}
}

// EditFieldsRequest records which keys were present in the body. A present
// zone_id of null (or an empty form value) clears the zone.
type EditFieldsRequest struct {
	Title           *string
	Description     *string
	ZoneSet         bool
	ZoneID          *uint
	ReferenceNumber *string
}

func (r *EditFieldsRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.EditFieldsCommand {
	return usecases.EditFieldsCommand{
		Actor:           actor,
		TicketID:        ticketID,
		Title:           r.Title,
		Description:     r.Description,
		ZoneSet:         r.ZoneSet,
		ZoneID:          r.ZoneID,
		ReferenceNumber: r.ReferenceNumber,
	}
}

func parseEditFieldsRequest(c *gin.Context) (*EditFieldsRequest, error) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return parseEditFieldsForm(c)
	default:
		return parseEditFieldsJSON(c.Request.Body)
	}
}

func parseEditFieldsJSON(body io.Reader) (*EditFieldsRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, errors.NewBadRequestError("invalid request body", err.Error())
	}

	req := &EditFieldsRequest{}
	for key, dst := range map[string]**string{
		"title":            &req.Title,
		"description":      &req.Description,
		"reference_number": &req.ReferenceNumber,
	} {
		value, ok := raw[key]
		if !ok || isJSONNull(value) {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, errors.NewValidationError(key+" must be a string", string(value))
		}
		*dst = &s
	}

	if value, ok := raw["zone_id"]; ok {
		req.ZoneSet = true
		if !isJSONNull(value) {
			var id uint
			if err := json.Unmarshal(value, &id); err != nil {
				return nil, errors.NewValidationError("invalid zone_id", string(value))
			}
			req.ZoneID = &id
		}
	}

	return req, nil
}

func parseEditFieldsForm(c *gin.Context) (*EditFieldsRequest, error) {
	req := &EditFieldsRequest{}
	if v, ok := c.GetPostForm("title"); ok {
		req.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		req.Description = &v
	}
	if v, ok := c.GetPostForm("reference_number"); ok {
		req.ReferenceNumber = &v
	}
	if v, ok := c.GetPostForm("zone_id"); ok {
		zoneID, err := parseOptionalUint(v, "zone_id")
		if err != nil {
			return nil, err
		}
		req.ZoneSet = true
		req.ZoneID = zoneID
	}
	return req, nil
}

// ListTicketsRequest holds the GET /tickets filters. Status is passed through
// untouched so the use case can reject unknown tokens.
type ListTicketsRequest struct {
	Status   string
	ZoneID   *uint
	Page     int
	PageSize int
}

func (r *ListTicketsRequest) ToQuery(actor authorization.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:    actor,
		Status:   r.Status,
		ZoneID:   r.ZoneID,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)
	zoneID, err := parseOptionalUint(c.Query("zone_id"), "zone_id")
	if err != nil {
		return nil, err
	}
	return &ListTicketsRequest{
		Status:   c.Query("status"),
		ZoneID:   zoneID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "ticket")
}

// parseOptionalUint returns nil for a blank value.
func parseOptionalUint(value, field string) (*uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil || n == 0 {
		return nil, errors.NewValidationError("invalid "+field, value)
	}
	id := uint(n)
	return &id, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
