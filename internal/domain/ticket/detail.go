package ticket

import (
	"fmt"
	"slices"
	"strings"

	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

// Detail is the type-specific record of a ticket. Exactly one of BugDetail,
// FeatureDetail or TaskDetail, and its Kind must equal the ticket type.
type Detail interface {
	Kind() vo.TicketType
	Validate() error
	isDetail()
}

type BugDetail struct {
	Category         vo.BugCategory
	URLLocation      string
	BrowserDevice    string
	StepsToReproduce string
	ExpectedResults  string
	ActualResults    string
}

func (BugDetail) Kind() vo.TicketType { return vo.TypeBug }

func (BugDetail) isDetail() {}

func (d BugDetail) Validate() error {
	if !d.Category.IsValid() {
		return fmt.Errorf("invalid bug category: %s", d.Category)
	}
	if len(d.BrowserDevice) > 100 {
		return fmt.Errorf("browser/device exceeds maximum length of 100 characters")
	}
	return requireFields(map[string]string{
		"steps_to_reproduce": d.StepsToReproduce,
		"expected_results":   d.ExpectedResults,
		"actual_results":     d.ActualResults,
	})
}

type FeatureDetail struct {
	Category             vo.FeatureCategory
	CurrentSituation     string
	DesiredFunctionality string
	SuccessCriteria      string
	BusinessValue        string
}

func (FeatureDetail) Kind() vo.TicketType { return vo.TypeFeature }

func (FeatureDetail) isDetail() {}

func (d FeatureDetail) Validate() error {
	if !d.Category.IsValid() {
		return fmt.Errorf("invalid feature category: %s", d.Category)
	}
	return requireFields(map[string]string{
		"current_situation":     d.CurrentSituation,
		"desired_functionality": d.DesiredFunctionality,
		"success_criteria":      d.SuccessCriteria,
		"business_value":        d.BusinessValue,
	})
}

type TaskDetail struct {
	TaskType            vo.TaskKind
	DetailedDescription string
	AcceptanceCriteria  string
}

func (TaskDetail) Kind() vo.TicketType { return vo.TypeTask }

func (TaskDetail) isDetail() {}

func (d TaskDetail) Validate() error {
	if !d.TaskType.IsValid() {
		return fmt.Errorf("invalid task type: %s", d.TaskType)
	}
	return requireFields(map[string]string{
		"detailed_description": d.DetailedDescription,
		"acceptance_criteria":  d.AcceptanceCriteria,
	})
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("missing required detail fields: %s", strings.Join(missing, ", "))
}
