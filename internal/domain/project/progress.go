package project

import "github.com/orris-inc/setracker/internal/domain/shared"

// Progress holds per-call ticket counts for a project.
type Progress struct {
	Total     int
	Completed int
}

// CompletionPercentage is completed/total*100 rounded to one decimal, 0 for
// a project without tickets.
func (p Progress) CompletionPercentage() float64 {
	return shared.Percentage(p.Completed, p.Total)
}
