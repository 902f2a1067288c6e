package valueobjects

import "fmt"

type TicketType string

const (
	TypeBug     TicketType = "bug"
	TypeFeature TicketType = "feature"
	TypeTask    TicketType = "task"
)

var validTicketTypes = map[TicketType]bool{
	TypeBug:     true,
	TypeFeature: true,
	TypeTask:    true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

// Label is the human readable name used in notifications.
func (t TicketType) Label() string {
	switch t {
	case TypeBug:
		return "Bug Report"
	case TypeFeature:
		return "Feature Request"
	case TypeTask:
		return "Task"
	default:
		return string(t)
	}
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
