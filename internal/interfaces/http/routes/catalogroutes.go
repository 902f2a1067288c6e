package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/project"
	technologyhandlers "github.com/orris-inc/setracker/internal/interfaces/http/handlers/technology"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

// CatalogRouteConfig holds dependencies for project, category and technology routes.
type CatalogRouteConfig struct {
	ProjectHandler    *projecthandlers.Handler
	TechnologyHandler *technologyhandlers.Handler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures catalog routes. Reads are open to any
// authenticated caller; writes need a team member.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	teamOnly := authorization.RequireTeamMember()

	projects := api.Group("/projects")
	projects.Use(cfg.AuthMiddleware.RequireAuth())
	{
		projects.POST("", teamOnly, cfg.ProjectHandler.Create)
		projects.GET("", cfg.ProjectHandler.List)

		projects.POST("/:id/members", teamOnly, cfg.ProjectHandler.AddMember)
		projects.DELETE("/:id/members/:username", teamOnly, cfg.ProjectHandler.RemoveMember)
		projects.PUT("/:id/lead", teamOnly, cfg.ProjectHandler.SetLead)
		projects.POST("/:id/deactivate", teamOnly, cfg.ProjectHandler.Deactivate)
		projects.DELETE("/:id", authorization.RequireAdmin(), cfg.ProjectHandler.Delete)
	}

	categories := api.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	{
		categories.POST("", teamOnly, cfg.TechnologyHandler.CreateCategory)
		categories.GET("", cfg.TechnologyHandler.ListCategories)
	}

	technologies := api.Group("/technologies")
	technologies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		technologies.POST("", teamOnly, cfg.TechnologyHandler.CreateTechnology)
		technologies.GET("", cfg.TechnologyHandler.ListTechnologies)
		technologies.DELETE("/:id", teamOnly, cfg.TechnologyHandler.DeleteTechnology)
	}
}
