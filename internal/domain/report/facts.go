// Package report computes the read-only aggregate views over tickets:
// per-user expertise, team technology usage and per-project progress.
// Every function here is pure; callers load a snapshot of facts and the
// report is recomputed on each call.
package report

import (
	"time"

	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

const (
	// TopUserTechnologies bounds most_used_technologies in the individual report.
	TopUserTechnologies = 10
	// TopTeamTechnologies bounds most_popular_technologies in the team report.
	TopTeamTechnologies = 15
	// RecentItems bounds recent work and recent activity lists.
	RecentItems = 10
)

// Person is the slice of a user needed by reports.
type Person struct {
	ID         uint
	Username   string
	TeamMember bool
}

// TicketFact is a flattened ticket as seen by the reporting engine.
type TicketFact struct {
	ID            uint
	Number        string
	Title         string
	Status        vo.TicketStatus
	ProjectID     uint
	ProjectName   string
	Owner         *Person
	Assignees     []Person
	TechnologyIDs []uint
	ModifiedAt    time.Time
}

type TechnologyFact struct {
	ID           uint
	Name         string
	CategoryID   uint
	CategoryName string
}

type CategoryFact struct {
	ID   uint
	Name string
}

// ProjectFact describes the project a project report is computed for.
type ProjectFact struct {
	ID          uint
	Name        string
	Description string
}

// TechnologyIndex resolves technology IDs; IDs missing from the index belong
// to technologies deleted while the snapshot was taken and are skipped.
type TechnologyIndex map[uint]TechnologyFact

func NewTechnologyIndex(techs []TechnologyFact) TechnologyIndex {
	idx := make(TechnologyIndex, len(techs))
	for _, t := range techs {
		idx[t.ID] = t
	}
	return idx
}
