package dto

import (
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

// DetailDTO is the flat wire shape of the bug/feature/task detail record.
// Kind selects which fields apply; Category holds the bug or feature
// category and TaskType the task classification.
type DetailDTO struct {
	Kind string `json:"kind"`

	Category         string `json:"category,omitempty"`
	URLLocation      string `json:"url_location,omitempty"`
	BrowserDevice    string `json:"browser_device,omitempty"`
	StepsToReproduce string `json:"steps_to_reproduce,omitempty"`
	ExpectedResults  string `json:"expected_results,omitempty"`
	ActualResults    string `json:"actual_results,omitempty"`

	CurrentSituation     string `json:"current_situation,omitempty"`
	DesiredFunctionality string `json:"desired_functionality,omitempty"`
	SuccessCriteria      string `json:"success_criteria,omitempty"`
	BusinessValue        string `json:"business_value,omitempty"`

	TaskType            string `json:"task_type,omitempty"`
	DetailedDescription string `json:"detailed_description,omitempty"`
	AcceptanceCriteria  string `json:"acceptance_criteria,omitempty"`
}

// ToDomainDetail converts the wire shape for a ticket of type ticketType.
// An empty Kind defaults to the ticket type.
func (d *DetailDTO) ToDomainDetail(ticketType vo.TicketType) (ticket.Detail, error) {
	if d == nil {
		return nil, nil
	}

	kind := vo.TicketType(d.Kind)
	if kind == "" {
		kind = ticketType
	}
	if kind != ticketType {
		return nil, fmt.Errorf("%s detail does not match ticket type %s", kind, ticketType)
	}

	var detail ticket.Detail
	switch kind {
	case vo.TypeBug:
		detail = ticket.BugDetail{
			Category:         vo.BugCategory(d.Category),
			URLLocation:      d.URLLocation,
			BrowserDevice:    d.BrowserDevice,
			StepsToReproduce: d.StepsToReproduce,
			ExpectedResults:  d.ExpectedResults,
			ActualResults:    d.ActualResults,
		}
	case vo.TypeFeature:
		detail = ticket.FeatureDetail{
			Category:             vo.FeatureCategory(d.Category),
			CurrentSituation:     d.CurrentSituation,
			DesiredFunctionality: d.DesiredFunctionality,
			SuccessCriteria:      d.SuccessCriteria,
			BusinessValue:        d.BusinessValue,
		}
	case vo.TypeTask:
		detail = ticket.TaskDetail{
			TaskType:            vo.TaskKind(d.TaskType),
			DetailedDescription: d.DetailedDescription,
			AcceptanceCriteria:  d.AcceptanceCriteria,
		}
	default:
		return nil, fmt.Errorf("invalid detail kind: %s", d.Kind)
	}

	if err := detail.Validate(); err != nil {
		return nil, err
	}
	return detail, nil
}

func ToDetailDTO(d ticket.Detail) *DetailDTO {
	switch v := d.(type) {
	case ticket.BugDetail:
		return &DetailDTO{
			Kind:             vo.TypeBug.String(),
			Category:         v.Category.String(),
			URLLocation:      v.URLLocation,
			BrowserDevice:    v.BrowserDevice,
			StepsToReproduce: v.StepsToReproduce,
			ExpectedResults:  v.ExpectedResults,
			ActualResults:    v.ActualResults,
		}
	case ticket.FeatureDetail:
		return &DetailDTO{
			Kind:                 vo.TypeFeature.String(),
			Category:             v.Category.String(),
			CurrentSituation:     v.CurrentSituation,
			DesiredFunctionality: v.DesiredFunctionality,
			SuccessCriteria:      v.SuccessCriteria,
			BusinessValue:        v.BusinessValue,
		}
	case ticket.TaskDetail:
		return &DetailDTO{
			Kind:                vo.TypeTask.String(),
			TaskType:            v.TaskType.String(),
			DetailedDescription: v.DetailedDescription,
			AcceptanceCriteria:  v.AcceptanceCriteria,
		}
	default:
		return nil
	}
}
