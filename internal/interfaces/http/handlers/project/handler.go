package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/project/usecases"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

type Handler struct {
	createUC     usecases.CreateProjectExecutor
	listUC       usecases.ListProjectsExecutor
	membershipUC usecases.UpdateProjectMembershipExecutor
	deactivateUC usecases.DeactivateProjectExecutor
	deleteUC     usecases.DeleteProjectExecutor
	logger       logger.Interface
}

func NewHandler(
	createUC usecases.CreateProjectExecutor,
	listUC usecases.ListProjectsExecutor,
	membershipUC usecases.UpdateProjectMembershipExecutor,
	deactivateUC usecases.DeactivateProjectExecutor,
	deleteUC usecases.DeleteProjectExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:     createUC,
		listUC:       listUC,
		membershipUC: membershipUC,
		deactivateUC: deactivateUC,
		deleteUC:     deleteUC,
		logger:       logger,
	}
}

// Create handles POST /projects
func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// List handles GET /projects
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddMember handles POST /projects/:id/members
func (h *Handler) AddMember(c *gin.Context) {
	projectID, req, ok := h.memberRequest(c)
	if !ok {
		return
	}

	result, err := h.membershipUC.AddMember(c.Request.Context(), usecases.ProjectMemberCommand{
		ProjectID: projectID,
		Username:  req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member added successfully", result)
}

// RemoveMember handles DELETE /projects/:id/members/:username
func (h *Handler) RemoveMember(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.membershipUC.RemoveMember(c.Request.Context(), usecases.ProjectMemberCommand{
		ProjectID: projectID,
		Username:  c.Param("username"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member removed successfully", result)
}

// SetLead handles PUT /projects/:id/lead
func (h *Handler) SetLead(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req SetLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.membershipUC.SetLead(c.Request.Context(), usecases.SetProjectLeadCommand{
		ProjectID: projectID,
		Username:  req.Lead,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project lead updated successfully", result)
}

// Deactivate handles POST /projects/:id/deactivate
func (h *Handler) Deactivate(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deactivateUC.Execute(c.Request.Context(), projectID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Delete handles DELETE /projects/:id. Tickets of the project go with it.
func (h *Handler) Delete(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), projectID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *Handler) memberRequest(c *gin.Context) (uint, MemberRequest, bool) {
	var req MemberRequest
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return 0, req, false
	}
	return projectID, req, true
}
