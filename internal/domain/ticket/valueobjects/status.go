package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusStaging    TicketStatus = "staging"
	StatusAccepted   TicketStatus = "accepted"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
	StatusRejected   TicketStatus = "rejected"
	StatusFrozen     TicketStatus = "frozen"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []TicketStatus{
	StatusStaging,
	StatusAccepted,
	StatusInProgress,
	StatusCompleted,
	StatusRejected,
	StatusFrozen,
}

var validTicketStatuses = map[TicketStatus]bool{
	StatusStaging:    true,
	StatusAccepted:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusRejected:   true,
	StatusFrozen:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsStaging() bool {
	return ts == StatusStaging
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
