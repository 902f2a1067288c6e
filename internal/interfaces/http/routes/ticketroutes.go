package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")

	// Anyone may report a ticket; a valid token links the caller as reporter.
	tickets.POST("", config.AuthMiddleware.OptionalAuth(), config.TicketHandler.CreateTicket)

	authed := tickets.Group("")
	authed.Use(config.AuthMiddleware.RequireAuth())
	{
		authed.GET("", config.TicketHandler.ListTickets)
		authed.GET("/:ticket_id", config.TicketHandler.GetTicket)
	}

	team := tickets.Group("")
	team.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireTeamMember())
	{
		team.PATCH("/:ticket_id/status", config.TicketHandler.UpdateStatus)
		team.PATCH("/:ticket_id/priority", config.TicketHandler.UpdatePriority)
		team.PATCH("/:ticket_id/owner", config.TicketHandler.UpdateOwner)
		team.PUT("/:ticket_id/assignees", config.TicketHandler.UpdateAssignment)
		team.PUT("/:ticket_id/technologies", config.TicketHandler.UpdateTechnologies)
		team.PUT("/:ticket_id/detail", config.TicketHandler.SetDetail)
		team.POST("/:ticket_id/attachments", config.TicketHandler.AddAttachment)
		team.DELETE("/:ticket_id/attachments/:attachment_id", config.TicketHandler.RemoveAttachment)
	}
}
