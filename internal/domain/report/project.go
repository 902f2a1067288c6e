package report

import (
	"sort"
	"time"

	"github.com/orris-inc/setracker/internal/domain/shared"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

type ProjectReport struct {
	Project         ProjectHeader          `json:"project"`
	Progress        ProjectProgress        `json:"progress"`
	TechnologyStack []NameCount            `json:"technology_stack"`
	Contributors    []string               `json:"contributors"`
	RecentActivity  []ProjectActivityEntry `json:"recent_activity"`
}

type ProjectHeader struct {
	ID                   uint    `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// ProjectProgress holds per-status counts; the six status counts always sum
// to TotalTickets.
type ProjectProgress struct {
	TotalTickets int `json:"total_tickets"`
	Staging      int `json:"staging"`
	Accepted     int `json:"accepted"`
	InProgress   int `json:"in_progress"`
	Completed    int `json:"completed"`
	Rejected     int `json:"rejected"`
	Frozen       int `json:"frozen"`
}

type ProjectActivityEntry struct {
	TicketID string    `json:"ticket_id"`
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	Owner    *string   `json:"owner"`
	Updated  time.Time `json:"updated"`
}

// BuildProject aggregates the tickets of a single project.
func BuildProject(project ProjectFact, tickets []TicketFact, techs TechnologyIndex) ProjectReport {
	tickets = dedupeTickets(tickets)

	progress := ProjectProgress{TotalTickets: len(tickets)}
	contributors := make(map[string]struct{})
	for _, t := range tickets {
		switch t.Status {
		case vo.StatusStaging:
			progress.Staging++
		case vo.StatusAccepted:
			progress.Accepted++
		case vo.StatusInProgress:
			progress.InProgress++
		case vo.StatusCompleted:
			progress.Completed++
		case vo.StatusRejected:
			progress.Rejected++
		case vo.StatusFrozen:
			progress.Frozen++
		}

		if t.Owner != nil {
			contributors[t.Owner.Username] = struct{}{}
		}
		for _, a := range t.Assignees {
			contributors[a.Username] = struct{}{}
		}
	}

	ranked := tallyTechnologies(tickets, techs)
	stack := make([]NameCount, 0, len(ranked))
	for _, tally := range ranked {
		stack = append(stack, NameCount{Name: tally.tech.Name, Count: tally.count})
	}

	names := make([]string, 0, len(contributors))
	for name := range contributors {
		names = append(names, name)
	}
	sort.Strings(names)

	recent := mostRecent(tickets, RecentItems)
	activity := make([]ProjectActivityEntry, 0, len(recent))
	for _, t := range recent {
		entry := ProjectActivityEntry{
			TicketID: t.Number,
			Title:    t.Title,
			Status:   t.Status.String(),
			Updated:  t.ModifiedAt,
		}
		if t.Owner != nil {
			owner := t.Owner.Username
			entry.Owner = &owner
		}
		activity = append(activity, entry)
	}

	return ProjectReport{
		Project: ProjectHeader{
			ID:                   project.ID,
			Name:                 project.Name,
			Description:          project.Description,
			CompletionPercentage: shared.Percentage(progress.Completed, progress.TotalTickets),
		},
		Progress:        progress,
		TechnologyStack: stack,
		Contributors:    names,
		RecentActivity:  activity,
	}
}
