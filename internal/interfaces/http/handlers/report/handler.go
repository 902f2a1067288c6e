package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/report/usecases"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

type Handler struct {
	individualUC usecases.IndividualReportExecutor
	teamUC       usecases.TeamTechnologyReportExecutor
	projectUC    usecases.ProjectReportExecutor
	logger       logger.Interface
}

func NewHandler(
	individualUC usecases.IndividualReportExecutor,
	teamUC usecases.TeamTechnologyReportExecutor,
	projectUC usecases.ProjectReportExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		individualUC: individualUC,
		teamUC:       teamUC,
		projectUC:    projectUC,
		logger:       logger,
	}
}

// Individual handles GET /reports/individual/:username
func (h *Handler) Individual(c *gin.Context) {
	result, err := h.individualUC.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TeamTechnology handles GET /reports/team-technology
func (h *Handler) TeamTechnology(c *gin.Context) {
	result, err := h.teamUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Project handles GET /reports/project/:id
func (h *Handler) Project(c *gin.Context) {
	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.projectUC.Execute(c.Request.Context(), projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
