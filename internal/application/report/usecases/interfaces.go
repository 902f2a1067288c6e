package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/domain/report"
)

type IndividualReportExecutor interface {
	Execute(ctx context.Context, username string) (*report.IndividualReport, error)
}

type TeamTechnologyReportExecutor interface {
	Execute(ctx context.Context) (*report.TeamTechnologyReport, error)
}

type ProjectReportExecutor interface {
	Execute(ctx context.Context, projectID uint) (*report.ProjectReport, error)
}
