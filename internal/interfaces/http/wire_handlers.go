package http

import (
	"github.com/orris-inc/setracker/internal/interfaces/http/handlers"
	projectHandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/project"
	reportHandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/report"
	technologyHandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/technology"
	ticketHandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	userHandler *handlers.UserHandler
	authHandler *handlers.AuthHandler

	// Catalog
	projectHandler    *projectHandlers.Handler
	technologyHandler *technologyHandlers.Handler

	// Ticket
	ticketHandler *ticketHandlers.TicketHandler

	// Reports
	reportHandler *reportHandlers.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		userHandler: handlers.NewUserHandler(u.createUser, u.setTeamMember, u.getUser, log),
		authHandler: handlers.NewAuthHandler(u.login, u.refreshToken, u.getUser, log),

		projectHandler: projectHandlers.NewHandler(
			u.createProject, u.listProjects, u.projectMembership, u.deactivateProject, u.deleteProject, log,
		),
		technologyHandler: technologyHandlers.NewHandler(
			u.createCategory, u.listCategories, u.createTechnology, u.deleteTechnology, u.listTechnologies, log,
		),

		ticketHandler: ticketHandlers.NewTicketHandler(ticketHandlers.TicketUseCases{
			Create:           u.createTicket,
			Get:              u.getTicket,
			List:             u.listTickets,
			UpdateStatus:     u.updateStatus,
			UpdatePriority:   u.updatePriority,
			UpdateOwner:      u.updateOwner,
			UpdateAssignment: u.updateAssignment,
			UpdateTechs:      u.updateTechnologies,
			SetDetail:        u.setDetail,
			AddAttachment:    u.addAttachment,
			RemoveAttachment: u.removeAttachment,
		}, log),

		reportHandler: reportHandlers.NewHandler(u.individualReport, u.teamTechnologyReport, u.projectReport, log),
	}
}
