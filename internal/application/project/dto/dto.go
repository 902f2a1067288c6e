package dto

import (
	"time"

	"github.com/orris-inc/setracker/internal/domain/project"
)

// ProjectDTO is the list shape of a project with its derived progress.
type ProjectDTO struct {
	ID                   uint       `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Active               bool       `json:"active"`
	Lead                 *string    `json:"lead"`
	Members              []string   `json:"members"`
	StartDate            *time.Time `json:"start_date"`
	TargetCompletion     *time.Time `json:"target_completion"`
	TotalTickets         int        `json:"total_tickets"`
	CompletedTickets     int        `json:"completed_tickets"`
	CompletionPercentage float64    `json:"completion_percentage"`
	CreatedAt            time.Time  `json:"created_at"`
}

// ToProjectDTO renders p. usernames resolves lead and member IDs; unknown IDs
// are left out.
func ToProjectDTO(p *project.Project, progress project.Progress, usernames map[uint]string) ProjectDTO {
	members := make([]string, 0, len(p.MemberIDs()))
	for _, id := range p.MemberIDs() {
		if name, ok := usernames[id]; ok {
			members = append(members, name)
		}
	}

	var lead *string
	if id := p.LeadID(); id != nil {
		if name, ok := usernames[*id]; ok {
			lead = &name
		}
	}

	return ProjectDTO{
		ID:                   p.ID(),
		Name:                 p.Name(),
		Description:          p.Description(),
		Active:               p.IsActive(),
		Lead:                 lead,
		Members:              members,
		StartDate:            p.StartDate(),
		TargetCompletion:     p.TargetCompletion(),
		TotalTickets:         progress.Total,
		CompletedTickets:     progress.Completed,
		CompletionPercentage: progress.CompletionPercentage(),
		CreatedAt:            p.CreatedAt(),
	}
}
