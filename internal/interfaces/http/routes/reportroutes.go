package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/report"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

type ReportRouteConfig struct {
	ReportHandler  *reporthandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupReportRoutes configures report routes. Reports are team-only.
func SetupReportRoutes(api *gin.RouterGroup, config *ReportRouteConfig) {
	reports := api.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireTeamMember())
	{
		reports.GET("/individual/:username", config.ReportHandler.Individual)
		reports.GET("/team-technology", config.ReportHandler.TeamTechnology)
		reports.GET("/project/:id", config.ReportHandler.Project)
	}
}
