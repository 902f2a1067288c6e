package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/interfaces/http/handlers"
	"github.com/orris-inc/setracker/internal/interfaces/http/middleware"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("", authorization.RequireAdmin(), cfg.UserHandler.CreateUser)
		users.PUT("/:username/team-member", authorization.RequireAdmin(), cfg.UserHandler.SetTeamMember)
		users.GET("/:username", authorization.RequireTeamMember(), cfg.UserHandler.GetUser)
	}
}
