package dto

import (
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/shared/mapper"
)

// TicketSummaryDTO is the list shape of a ticket.
type TicketSummaryDTO struct {
	ID            uint      `json:"id"`
	TicketID      string    `json:"ticket_id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	TicketType    string    `json:"ticket_type"`
	Project       string    `json:"project"`
	Technologies  []string  `json:"technologies"`
	ReporterName  string    `json:"reporter_name"`
	Owner         *string   `json:"owner"`
	AssignedUsers []string  `json:"assigned_users"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReporterDTO struct {
	Name       string  `json:"name"`
	Contact    string  `json:"contact"`
	Department string  `json:"department,omitempty"`
	Username   *string `json:"username,omitempty"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	FileRef      string    `json:"file"`
	OriginalName string    `json:"original_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// TicketDTO is the full shape returned by get_ticket.
type TicketDTO struct {
	TicketSummaryDTO
	Description          string              `json:"description"`
	DescriptionHTML      string              `json:"description_html"`
	BusinessImpact       string              `json:"business_impact"`
	Reporter             ReporterDTO         `json:"reporter"`
	Detail               *DetailDTO          `json:"detail"`
	Attachments          []AttachmentDTO     `json:"attachments"`
	TechnologyByCategory map[string][]string `json:"technology_by_category"`
	TechnologySummary    string              `json:"technology_summary"`
	CreatedBy            *string             `json:"created_by"`
	ModifiedBy           *string             `json:"modified_by"`
	ModifiedAt           time.Time           `json:"modified_at"`
}

type TechnologyRef struct {
	Name     string
	Category string
}

// References resolves the IDs a ticket points at into display names.
// Unresolvable IDs are omitted from the rendered DTO.
type References struct {
	Projects     map[uint]string
	Technologies map[uint]TechnologyRef
	Usernames    map[uint]string
}

func (r References) username(id *uint) *string {
	if id == nil {
		return nil
	}
	name, ok := r.Usernames[*id]
	if !ok {
		return nil
	}
	return &name
}

func (r References) technologyNames(ids []uint) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if tech, ok := r.Technologies[id]; ok {
			names = append(names, tech.Name)
		}
	}
	return names
}

func ToTicketSummaryDTO(t *ticket.Ticket, refs References) TicketSummaryDTO {
	assigned := make([]string, 0, len(t.AssigneeIDs()))
	for _, id := range t.AssigneeIDs() {
		if name, ok := refs.Usernames[id]; ok {
			assigned = append(assigned, name)
		}
	}

	return TicketSummaryDTO{
		ID:            t.ID(),
		TicketID:      t.Number(),
		Title:         t.Title(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		TicketType:    t.Type().String(),
		Project:       refs.Projects[t.ProjectID()],
		Technologies:  refs.technologyNames(t.TechnologyIDs()),
		ReporterName:  t.Reporter().Name,
		Owner:         refs.username(t.OwnerID()),
		AssignedUsers: assigned,
		CreatedAt:     t.CreatedAt(),
	}
}

func ToTicketSummaryDTOs(tickets []*ticket.Ticket, refs References) []TicketSummaryDTO {
	result := mapper.MapSlice(tickets, func(t *ticket.Ticket) TicketSummaryDTO {
		return ToTicketSummaryDTO(t, refs)
	})
	if result == nil {
		return []TicketSummaryDTO{}
	}
	return result
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		FileRef:      a.FileRef(),
		OriginalName: a.OriginalName(),
		CreatedAt:    a.CreatedAt(),
	}
}

func ToTicketDTO(t *ticket.Ticket, refs References, attachments []*ticket.Attachment, descriptionHTML string) *TicketDTO {
	if t == nil {
		return nil
	}

	byCategory := make(map[string][]string)
	for _, id := range t.TechnologyIDs() {
		tech, ok := refs.Technologies[id]
		if !ok {
			continue
		}
		byCategory[tech.Category] = append(byCategory[tech.Category], tech.Name)
	}

	attachmentDTOs := mapper.MapSlice(attachments, ToAttachmentDTO)
	if attachmentDTOs == nil {
		attachmentDTOs = []AttachmentDTO{}
	}

	reporter := t.Reporter()
	summary := ToTicketSummaryDTO(t, refs)

	return &TicketDTO{
		TicketSummaryDTO: summary,
		Description:      t.Description(),
		DescriptionHTML:  descriptionHTML,
		BusinessImpact:   t.BusinessImpact(),
		Reporter: ReporterDTO{
			Name:       reporter.Name,
			Contact:    reporter.Contact,
			Department: reporter.Department,
			Username:   refs.username(reporter.UserID),
		},
		Detail:               ToDetailDTO(t.Detail()),
		Attachments:          attachmentDTOs,
		TechnologyByCategory: byCategory,
		TechnologySummary:    strings.Join(summary.Technologies, ", "),
		CreatedBy:            refs.username(t.Audit().CreatedBy),
		ModifiedBy:           refs.username(t.Audit().ModifiedBy),
		ModifiedAt:           t.UpdatedAt(),
	}
}
