package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/domain/report"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type TeamTechnologyReportUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewTeamTechnologyReportUseCase(reportRepo report.Repository, logger logger.Interface) *TeamTechnologyReportUseCase {
	return &TeamTechnologyReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (uc *TeamTechnologyReportUseCase) Execute(ctx context.Context) (*report.TeamTechnologyReport, error) {
	teamSize, err := uc.reportRepo.TeamSize(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count team members", "error", err)
		return nil, err
	}
	categories, err := uc.reportRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	techs, err := uc.reportRepo.Technologies(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := uc.reportRepo.AllTickets(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for team report", "error", err)
		return nil, err
	}

	result := report.BuildTeamTechnology(teamSize, categories, techs, tickets)
	return &result, nil
}
