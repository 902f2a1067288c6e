package http

import (
	projectUsecases "github.com/orris-inc/setracker/internal/application/project/usecases"
	reportUsecases "github.com/orris-inc/setracker/internal/application/report/usecases"
	technologyUsecases "github.com/orris-inc/setracker/internal/application/technology/usecases"
	ticketUsecases "github.com/orris-inc/setracker/internal/application/ticket/usecases"
	userUsecases "github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/shared/biztime"
)

// allUseCases holds every use case the HTTP layer dispatches to.
type allUseCases struct {
	// User & Auth
	createUser    *userUsecases.CreateUserUseCase
	getUser       *userUsecases.GetUserUseCase
	setTeamMember *userUsecases.SetTeamMemberUseCase
	login         *userUsecases.LoginUseCase
	refreshToken  *userUsecases.RefreshTokenUseCase

	// Projects
	createProject     *projectUsecases.CreateProjectUseCase
	listProjects      *projectUsecases.ListProjectsUseCase
	projectMembership *projectUsecases.UpdateProjectMembershipUseCase
	deactivateProject *projectUsecases.DeactivateProjectUseCase
	deleteProject     *projectUsecases.DeleteProjectUseCase

	// Catalog
	createCategory   *technologyUsecases.CreateCategoryUseCase
	listCategories   *technologyUsecases.ListCategoriesUseCase
	createTechnology *technologyUsecases.CreateTechnologyUseCase
	deleteTechnology *technologyUsecases.DeleteTechnologyUseCase
	listTechnologies *technologyUsecases.ListTechnologiesUseCase

	// Tickets
	createTicket       *ticketUsecases.CreateTicketUseCase
	getTicket          *ticketUsecases.GetTicketUseCase
	listTickets        *ticketUsecases.ListTicketsUseCase
	updateStatus       *ticketUsecases.UpdateTicketStatusUseCase
	updatePriority     *ticketUsecases.UpdateTicketPriorityUseCase
	updateOwner        *ticketUsecases.UpdateTicketOwnerUseCase
	updateAssignment   *ticketUsecases.UpdateTicketAssignmentUseCase
	updateTechnologies *ticketUsecases.UpdateTicketTechnologiesUseCase
	setDetail          *ticketUsecases.SetTicketDetailUseCase
	addAttachment      *ticketUsecases.AddAttachmentUseCase
	removeAttachment   *ticketUsecases.RemoveAttachmentUseCase

	// Reports
	individualReport     *reportUsecases.IndividualReportUseCase
	teamTechnologyReport *reportUsecases.TeamTechnologyReportUseCase
	projectReport        *reportUsecases.ProjectReportUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	var limiter userUsecases.LoginLimiter
	if c.loginLimiter != nil {
		limiter = c.loginLimiter
	}

	c.ucs = &allUseCases{
		createUser:    userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, log),
		getUser:       userUsecases.NewGetUserUseCase(r.userRepo, log),
		setTeamMember: userUsecases.NewSetTeamMemberUseCase(r.userRepo, log),
		login:         userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtService, limiter, log),
		refreshToken:  userUsecases.NewRefreshTokenUseCase(r.userRepo, c.jwtService, log),

		createProject:     projectUsecases.NewCreateProjectUseCase(r.projectRepo, r.userRepo, log),
		listProjects:      projectUsecases.NewListProjectsUseCase(r.projectRepo, r.userRepo, log),
		projectMembership: projectUsecases.NewUpdateProjectMembershipUseCase(r.projectRepo, r.userRepo, log),
		deactivateProject: projectUsecases.NewDeactivateProjectUseCase(r.projectRepo, log),
		deleteProject:     projectUsecases.NewDeleteProjectUseCase(r.projectRepo, log),

		createCategory:   technologyUsecases.NewCreateCategoryUseCase(r.categoryRepo, log),
		listCategories:   technologyUsecases.NewListCategoriesUseCase(r.categoryRepo, log),
		createTechnology: technologyUsecases.NewCreateTechnologyUseCase(r.technologyRepo, r.categoryRepo, log),
		deleteTechnology: technologyUsecases.NewDeleteTechnologyUseCase(r.technologyRepo, log),
		listTechnologies: technologyUsecases.NewListTechnologiesUseCase(r.technologyRepo, r.categoryRepo, log),

		createTicket: ticketUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo,
			c.numbers, c.txManager, c.ownerNotifier, c.metrics, biztime.SystemClock(),
			c.cfg.Ticket.MaxIDRetries, log,
		),
		getTicket: ticketUsecases.NewGetTicketUseCase(
			r.ticketRepo, r.attachmentRepo, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo,
			c.markdown, log,
		),
		listTickets:        ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		updateStatus:       ticketUsecases.NewUpdateTicketStatusUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		updatePriority:     ticketUsecases.NewUpdateTicketPriorityUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		updateOwner:        ticketUsecases.NewUpdateTicketOwnerUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, c.ownerNotifier, log),
		updateAssignment:   ticketUsecases.NewUpdateTicketAssignmentUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		updateTechnologies: ticketUsecases.NewUpdateTicketTechnologiesUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		setDetail:          ticketUsecases.NewSetTicketDetailUseCase(r.ticketRepo, c.txManager, r.projectRepo, r.technologyRepo, r.categoryRepo, r.userRepo, log),
		addAttachment:      ticketUsecases.NewAddAttachmentUseCase(r.ticketRepo, r.attachmentRepo, log),
		removeAttachment:   ticketUsecases.NewRemoveAttachmentUseCase(r.ticketRepo, r.attachmentRepo, log),

		individualReport:     reportUsecases.NewIndividualReportUseCase(r.reportRepo, r.userRepo, log),
		teamTechnologyReport: reportUsecases.NewTeamTechnologyReportUseCase(r.reportRepo, log),
		projectReport:        reportUsecases.NewProjectReportUseCase(r.reportRepo, r.projectRepo, log),
	}
}
