package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/report"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type ProjectReportUseCase struct {
	reportRepo  report.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewProjectReportUseCase(reportRepo report.Repository, projectRepo project.Repository, logger logger.Interface) *ProjectReportUseCase {
	return &ProjectReportUseCase{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ProjectReportUseCase) Execute(ctx context.Context, projectID uint) (*report.ProjectReport, error) {
	p, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to load project for report", "project_id", projectID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", projectID))
	}

	tickets, err := uc.reportRepo.TicketsForProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	techs, err := uc.reportRepo.Technologies(ctx)
	if err != nil {
		return nil, err
	}

	fact := report.ProjectFact{ID: p.ID(), Name: p.Name(), Description: p.Description()}
	result := report.BuildProject(fact, tickets, report.NewTechnologyIndex(techs))
	return &result, nil
}
