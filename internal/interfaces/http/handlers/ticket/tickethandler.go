package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/incidentdesk/internal/application/ticket/usecases"
	"github.com/incidentdesk/incidentdesk/internal/shared/authorization"
	"github.com/incidentdesk/incidentdesk/internal/shared/errors"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
	"github.com/incidentdesk/incidentdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	editFieldsUC   usecases.EditFieldsExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	acknowledgeUC  usecases.AcknowledgeClosureExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	maxUploadBytes int64
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	editFieldsUC usecases.EditFieldsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	acknowledgeUC usecases.AcknowledgeClosureExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	maxUploadBytes int64,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		editFieldsUC:   editFieldsUC,
		changeStatusUC: changeStatusUC,
		acknowledgeUC:  acknowledgeUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
//
//	@Summary		Report a ticket
//	@Description	Create a ticket from JSON or from a multipart form with an optional photo part
//	@Tags			tickets
//	@Accept			json,mpfd
//	@Produce		json
//	@Security		Bearer
//	@Param			ticket	body		CreateTicketRequest	false	"Ticket fields (JSON)"
//	@Param			photo	formData	file				false	"Photo (multipart)"
//	@Success		201		{object}	utils.APIResponse	"Ticket created"
//	@Failure		400		{object}	utils.APIResponse	"MissingField or invalid zone"
//	@Failure		401		{object}	utils.APIResponse	"Unauthorized"
//	@Router			/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	req, photo, err := parseCreateTicketRequest(c)
	if err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer photo.Close()

	var upload *usecases.PhotoUpload
	if photo != nil {
		upload = photo.upload
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor, upload))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id. Opening a ticket as its creator marks
// its notifications read.
//
//	@Summary	Get a ticket
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		int					true	"Ticket ID"
//	@Success	200	{object}	utils.APIResponse	"Ticket"
//	@Failure	403	{object}	utils.APIResponse	"Forbidden"
//	@Failure	404	{object}	utils.APIResponse	"Ticket not found"
//	@Router		/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{Actor: actor, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
//
//	@Summary	List tickets
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Param		status		query		string				false	"Status filter"
//	@Param		zone_id		query		int					false	"Zone filter"
//	@Param		page		query		int					false	"Page"
//	@Param		page_size	query		int					false	"Page size"
//	@Success	200			{object}	utils.APIResponse	"Ticket page"
//	@Failure	400			{object}	utils.APIResponse	"InvalidStatus"
//	@Router		/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// EditTicket handles PATCH /tickets/:id
func (h *TicketHandler) EditTicket(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req, err := parseEditFieldsRequest(c)
	if err != nil {
		h.logger.Warnw("invalid request body for edit ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editFieldsUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result.Ticket)
}

// ChangeStatus handles PATCH /tickets/:id/status
//
//	@Summary	Change ticket status
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		body	body		ChangeStatusRequest	true	"Target status"
//	@Success	200		{object}	utils.APIResponse	"Ticket"
//	@Failure	400		{object}	utils.APIResponse	"InvalidStatus"
//	@Failure	403		{object}	utils.APIResponse	"Forbidden"
//	@Router		/tickets/{id}/status [patch]
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Changed {
		utils.SuccessResponse(c, http.StatusOK, "Ticket status unchanged", result.Ticket)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result.Ticket)
}

// AcknowledgeClosure handles POST /tickets/:id/acknowledge
func (h *TicketHandler) AcknowledgeClosure(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.acknowledgeUC.Execute(c.Request.Context(), usecases.AcknowledgeClosureCommand{Actor: actor, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Ticket)
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{Actor: actor, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /tickets/:id/comments
//
//	@Summary	Comment on a ticket
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		body	body		AddCommentRequest	true	"Comment text"
//	@Success	201		{object}	utils.APIResponse	"Comment"
//	@Failure	400		{object}	utils.APIResponse	"EmptyComment"
//	@Failure	403		{object}	utils.APIResponse	"Forbidden"
//	@Router		/tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := authorization.RequireActor(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}
