package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/shared/constants"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

// RequireAdmin must run after the authentication middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ParseUserRole(c.GetString(constants.ContextKeyUserRole)).IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireTeamMember rejects callers that are not flagged as internal team members.
// Admins pass regardless of the flag.
func RequireTeamMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsTeamMember(c) || ParseUserRole(c.GetString(constants.ContextKeyUserRole)).IsAdmin() {
			c.Next()
			return
		}
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("team membership required"))
		c.Abort()
	}
}

func IsTeamMember(c *gin.Context) bool {
	return c.GetBool(constants.ContextKeyTeamMember)
}
