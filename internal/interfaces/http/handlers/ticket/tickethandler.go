package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/ticket/usecases"
	"github.com/orris-inc/setracker/internal/interfaces/http/handlers/common"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

// TicketUseCases groups the ticket executors the handler dispatches to.
type TicketUseCases struct {
	Create           usecases.CreateTicketExecutor
	Get              usecases.GetTicketExecutor
	List             usecases.ListTicketsExecutor
	UpdateStatus     usecases.UpdateTicketStatusExecutor
	UpdatePriority   usecases.UpdateTicketPriorityExecutor
	UpdateOwner      usecases.UpdateTicketOwnerExecutor
	UpdateAssignment usecases.UpdateTicketAssignmentExecutor
	UpdateTechs      usecases.UpdateTicketTechnologiesExecutor
	SetDetail        usecases.SetTicketDetailExecutor
	AddAttachment    usecases.AddAttachmentExecutor
	RemoveAttachment usecases.RemoveAttachmentExecutor
}

type TicketHandler struct {
	ucs    TicketUseCases
	logger logger.Interface
}

func NewTicketHandler(ucs TicketUseCases, logger logger.Interface) *TicketHandler {
	return &TicketHandler{ucs: ucs, logger: logger}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.ucs.Create.Execute(c.Request.Context(), req.ToCommand(common.CallerFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:ticket_id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.ucs.Get.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: c.Param("ticket_id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets?status=&project_id=
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ucs.List.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /tickets/:ticket_id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.UpdateStatus.Execute(c.Request.Context(), usecases.UpdateTicketStatusCommand{
		TicketID: c.Param("ticket_id"),
		Status:   req.Status,
	})
	h.respond(c, result, err, "Ticket status updated successfully")
}

// UpdatePriority handles PATCH /tickets/:ticket_id/priority
func (h *TicketHandler) UpdatePriority(c *gin.Context) {
	var req UpdatePriorityRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.UpdatePriority.Execute(c.Request.Context(), usecases.UpdateTicketPriorityCommand{
		TicketID: c.Param("ticket_id"),
		Priority: req.Priority,
	})
	h.respond(c, result, err, "Ticket priority updated successfully")
}

// UpdateOwner handles PATCH /tickets/:ticket_id/owner
func (h *TicketHandler) UpdateOwner(c *gin.Context) {
	var req UpdateOwnerRequest
	if !h.bind(c, &req) {
		return
	}

	owner := ""
	if req.Owner != nil {
		owner = *req.Owner
	}
	result, err := h.ucs.UpdateOwner.Execute(c.Request.Context(), usecases.UpdateTicketOwnerCommand{
		TicketID:      c.Param("ticket_id"),
		OwnerUsername: owner,
	})
	h.respond(c, result, err, "Ticket owner updated successfully")
}

// UpdateAssignment handles PUT /tickets/:ticket_id/assignees
func (h *TicketHandler) UpdateAssignment(c *gin.Context) {
	var req UpdateAssignmentRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.UpdateAssignment.Execute(c.Request.Context(), usecases.UpdateTicketAssignmentCommand{
		TicketID:          c.Param("ticket_id"),
		AssignedUsernames: req.AssignedUsers,
	})
	h.respond(c, result, err, "Ticket assignment updated successfully")
}

// UpdateTechnologies handles PUT /tickets/:ticket_id/technologies
func (h *TicketHandler) UpdateTechnologies(c *gin.Context) {
	var req UpdateTechnologiesRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.UpdateTechs.Execute(c.Request.Context(), usecases.UpdateTicketTechnologiesCommand{
		TicketID:      c.Param("ticket_id"),
		TechnologyIDs: req.TechnologyIDs,
	})
	h.respond(c, result, err, "Ticket technologies updated successfully")
}

// SetDetail handles PUT /tickets/:ticket_id/detail
func (h *TicketHandler) SetDetail(c *gin.Context) {
	var req SetDetailRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.SetDetail.Execute(c.Request.Context(), usecases.SetTicketDetailCommand{
		TicketID: c.Param("ticket_id"),
		Detail:   &req.DetailDTO,
	})
	h.respond(c, result, err, "Ticket detail updated successfully")
}

// AddAttachment handles POST /tickets/:ticket_id/attachments
func (h *TicketHandler) AddAttachment(c *gin.Context) {
	var req AddAttachmentRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.ucs.AddAttachment.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		TicketID:     c.Param("ticket_id"),
		FileRef:      req.File,
		OriginalName: req.OriginalName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

// RemoveAttachment handles DELETE /tickets/:ticket_id/attachments/:attachment_id
func (h *TicketHandler) RemoveAttachment(c *gin.Context) {
	attachmentID, err := utils.ParseUintParam(c, "attachment_id", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.ucs.RemoveAttachment.Execute(c.Request.Context(), usecases.RemoveAttachmentCommand{
		TicketID:     c.Param("ticket_id"),
		AttachmentID: attachmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TicketHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return false
	}
	if c.Param("ticket_id") == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("ticket ID is required"))
		return false
	}
	return true
}

func (h *TicketHandler) respond(c *gin.Context, result interface{}, err error, message string) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}
