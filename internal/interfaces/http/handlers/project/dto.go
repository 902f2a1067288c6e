package project

import (
	"fmt"
	"time"

	"github.com/orris-inc/setracker/internal/application/project/usecases"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

const dateLayout = "2006-01-02"

type CreateProjectRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	Description      string `json:"description"`
	Lead             string `json:"lead"`
	StartDate        string `json:"start_date"`
	TargetCompletion string `json:"target_completion"`
}

func (r *CreateProjectRequest) ToCommand() (usecases.CreateProjectCommand, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return usecases.CreateProjectCommand{}, err
	}
	target, err := parseDate("target_completion", r.TargetCompletion)
	if err != nil {
		return usecases.CreateProjectCommand{}, err
	}
	return usecases.CreateProjectCommand{
		Name:             r.Name,
		Description:      r.Description,
		LeadUsername:     r.Lead,
		StartDate:        start,
		TargetCompletion: target,
	}, nil
}

type MemberRequest struct {
	Username string `json:"username" binding:"required"`
}

// SetLeadRequest clears the lead when Lead is empty.
type SetLeadRequest struct {
	Lead string `json:"lead"`
}

func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be formatted as YYYY-MM-DD", field), value)
	}
	return &t, nil
}
