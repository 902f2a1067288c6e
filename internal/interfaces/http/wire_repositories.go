package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/repository"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo       *repository.UserRepository
	projectRepo    *repository.ProjectRepository
	categoryRepo   *repository.CategoryRepository
	technologyRepo *repository.TechnologyRepository
	ticketRepo     *repository.TicketRepository
	attachmentRepo *repository.AttachmentRepository
	reportRepo     *repository.ReportRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db, log),
		projectRepo:    repository.NewProjectRepository(db),
		categoryRepo:   repository.NewCategoryRepository(db),
		technologyRepo: repository.NewTechnologyRepository(db),
		ticketRepo:     repository.NewTicketRepository(db),
		attachmentRepo: repository.NewAttachmentRepository(db),
		reportRepo:     repository.NewReportRepository(db),
	}
}
