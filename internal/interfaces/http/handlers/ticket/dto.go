package ticket

import (
	"github.com/gin-gonic/gin"

	commondto "github.com/orris-inc/setracker/internal/application/common/dto"
	ticketdto "github.com/orris-inc/setracker/internal/application/ticket/dto"
	"github.com/orris-inc/setracker/internal/application/ticket/usecases"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title              string               `json:"title" binding:"required,max=200"`
	Description        string               `json:"description" binding:"required"`
	TicketType         string               `json:"ticket_type" binding:"required"`
	ProjectID          uint                 `json:"project_id" binding:"required,gt=0"`
	TechnologyIDs      []uint               `json:"technology_ids"`
	ReporterName       string               `json:"reporter_name" binding:"required,max=100"`
	ReporterContact    string               `json:"reporter_contact" binding:"required,max=100"`
	ReporterDepartment string               `json:"reporter_department" binding:"max=100"`
	Priority           string               `json:"priority"`
	BusinessImpact     string               `json:"business_impact"`
	Owner              string               `json:"owner"`
	AssignedUsers      []string             `json:"assigned_users"`
	Detail             *ticketdto.DetailDTO `json:"detail"`
}

func (r *CreateTicketRequest) ToCommand(caller commondto.Caller) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:              r.Title,
		Description:        r.Description,
		TicketType:         r.TicketType,
		ProjectID:          r.ProjectID,
		TechnologyIDs:      r.TechnologyIDs,
		ReporterName:       r.ReporterName,
		ReporterContact:    r.ReporterContact,
		ReporterDepartment: r.ReporterDepartment,
		Priority:           r.Priority,
		BusinessImpact:     r.BusinessImpact,
		OwnerUsername:      r.Owner,
		AssignedUsernames:  r.AssignedUsers,
		Detail:             r.Detail,
		Caller:             caller,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

// UpdateOwnerRequest clears the owner when Owner is null or empty.
type UpdateOwnerRequest struct {
	Owner *string `json:"owner"`
}

type UpdateAssignmentRequest struct {
	AssignedUsers []string `json:"assigned_users"`
}

type UpdateTechnologiesRequest struct {
	TechnologyIDs []uint `json:"technology_ids"`
}

// SetDetailRequest carries the flat detail shape; kind defaults to the ticket type.
type SetDetailRequest struct {
	ticketdto.DetailDTO
}

type AddAttachmentRequest struct {
	File         string `json:"file" binding:"required,max=255"`
	OriginalName string `json:"original_name" binding:"required,max=255"`
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{Status: c.Query("status")}
	projectID, err := utils.ParseOptionalUintQuery(c, "project_id")
	if err != nil {
		return query, err
	}
	if projectID != nil {
		query.ProjectID = *projectID
	}
	return query, nil
}
