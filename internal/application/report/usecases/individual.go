package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/report"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type IndividualReportUseCase struct {
	reportRepo report.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewIndividualReportUseCase(reportRepo report.Repository, userRepo user.Repository, logger logger.Interface) *IndividualReportUseCase {
	return &IndividualReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute reports on a team member. Unknown and external users both yield
// the same NotFound error.
func (uc *IndividualReportUseCase) Execute(ctx context.Context, username string) (*report.IndividualReport, error) {
	uc.logger.Debugw("building individual report", "username", username)

	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to load user for report", "username", username, "error", err)
		return nil, err
	}
	if u == nil || !u.IsTeamMember() {
		return nil, errors.NewNotFoundError(fmt.Sprintf("team member %q not found", username))
	}

	tickets, err := uc.reportRepo.TicketsWorkedOnBy(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to load tickets for report", "username", username, "error", err)
		return nil, err
	}
	techs, err := uc.reportRepo.Technologies(ctx)
	if err != nil {
		return nil, err
	}

	result := report.BuildIndividual(u.DisplayName(), u.Username(), tickets, report.NewTechnologyIndex(techs))
	return &result, nil
}
