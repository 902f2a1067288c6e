// Package common holds helpers shared by the HTTP handlers.
package common

import (
	"github.com/gin-gonic/gin"

	commondto "github.com/orris-inc/setracker/internal/application/common/dto"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/constants"
)

// CallerFromContext reads the identity set by the auth middleware. Requests
// without one yield the anonymous caller.
func CallerFromContext(c *gin.Context) commondto.Caller {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return commondto.Caller{}
	}
	id, _ := userID.(uint)
	return commondto.Caller{
		UserID:       id,
		Username:     c.GetString(constants.ContextKeyUsername),
		IsTeamMember: c.GetBool(constants.ContextKeyTeamMember),
		IsAdmin:      authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)).IsAdmin(),
	}
}
