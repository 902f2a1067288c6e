package mappers

import (
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
)

// TicketLinks carries the rows a ticket is assembled from besides its own.
type TicketLinks struct {
	TechnologyIDs []uint
	AssigneeIDs   []uint
	Detail        ticket.Detail
}

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model and its linked rows to a domain entity.
	ToDomain(model *models.TicketModel, links TicketLinks) (*ticket.Ticket, error)

	// DetailToModel returns the per-type detail row, or nil when the ticket has no detail.
	DetailToModel(ticketID uint, detail ticket.Detail) interface{}

	BugToDomain(model *models.BugReportModel) ticket.Detail
	FeatureToDomain(model *models.FeatureRequestModel) ticket.Detail
	TaskToDomain(model *models.TaskModel) ticket.Detail

	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	reporter := t.Reporter()
	audit := t.Audit()
	return &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		Title:              t.Title(),
		Description:        t.Description(),
		TicketType:         t.Type().String(),
		ProjectID:          t.ProjectID(),
		Status:             t.Status().String(),
		Priority:           t.Priority().String(),
		OwnerID:            t.OwnerID(),
		ReporterName:       reporter.Name,
		ReporterContact:    reporter.Contact,
		ReporterDepartment: reporter.Department,
		ReporterUserID:     reporter.UserID,
		BusinessImpact:     t.BusinessImpact(),
		CreatedBy:          audit.CreatedBy,
		ModifiedBy:         audit.ModifiedBy,
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, links TicketLinks) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		vo.TicketType(model.TicketType),
		model.ProjectID,
		links.TechnologyIDs,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.OwnerID,
		links.AssigneeIDs,
		ticket.Reporter{
			Name:       model.ReporterName,
			Contact:    model.ReporterContact,
			Department: model.ReporterDepartment,
			UserID:     model.ReporterUserID,
		},
		model.BusinessImpact,
		links.Detail,
		ticket.AuditInfo{CreatedBy: model.CreatedBy, ModifiedBy: model.ModifiedBy},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %s: %w", model.Number, err)
	}
	if model.Version > 0 {
		t.SetVersion(model.Version)
	}
	return t, nil
}

func (m *TicketMapperImpl) DetailToModel(ticketID uint, detail ticket.Detail) interface{} {
	switch d := detail.(type) {
	case ticket.BugDetail:
		return &models.BugReportModel{
			TicketID:         ticketID,
			Category:         d.Category.String(),
			URLLocation:      d.URLLocation,
			BrowserDevice:    d.BrowserDevice,
			StepsToReproduce: d.StepsToReproduce,
			ExpectedResults:  d.ExpectedResults,
			ActualResults:    d.ActualResults,
		}
	case ticket.FeatureDetail:
		return &models.FeatureRequestModel{
			TicketID:             ticketID,
			Category:             d.Category.String(),
			CurrentSituation:     d.CurrentSituation,
			DesiredFunctionality: d.DesiredFunctionality,
			SuccessCriteria:      d.SuccessCriteria,
			BusinessValue:        d.BusinessValue,
		}
	case ticket.TaskDetail:
		return &models.TaskModel{
			TicketID:            ticketID,
			TaskType:            d.TaskType.String(),
			DetailedDescription: d.DetailedDescription,
			AcceptanceCriteria:  d.AcceptanceCriteria,
		}
	default:
		return nil
	}
}

func (m *TicketMapperImpl) BugToDomain(model *models.BugReportModel) ticket.Detail {
	return ticket.BugDetail{
		Category:         vo.BugCategory(model.Category),
		URLLocation:      model.URLLocation,
		BrowserDevice:    model.BrowserDevice,
		StepsToReproduce: model.StepsToReproduce,
		ExpectedResults:  model.ExpectedResults,
		ActualResults:    model.ActualResults,
	}
}

func (m *TicketMapperImpl) FeatureToDomain(model *models.FeatureRequestModel) ticket.Detail {
	return ticket.FeatureDetail{
		Category:             vo.FeatureCategory(model.Category),
		CurrentSituation:     model.CurrentSituation,
		DesiredFunctionality: model.DesiredFunctionality,
		SuccessCriteria:      model.SuccessCriteria,
		BusinessValue:        model.BusinessValue,
	}
}

func (m *TicketMapperImpl) TaskToDomain(model *models.TaskModel) ticket.Detail {
	return ticket.TaskDetail{
		TaskType:            vo.TaskKind(model.TaskType),
		DetailedDescription: model.DetailedDescription,
		AcceptanceCriteria:  model.AcceptanceCriteria,
	}
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		FileRef:      a.FileRef(),
		OriginalName: a.OriginalName(),
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(model.ID, model.TicketID, model.FileRef, model.OriginalName, model.CreatedAt)
}
