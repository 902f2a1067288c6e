package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	createUseCase  usecases.CreateUserExecutor
	setTeamUseCase usecases.SetTeamMemberExecutor
	getUseCase     usecases.GetUserExecutor
	logger         logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	createUC usecases.CreateUserExecutor,
	setTeamUC usecases.SetTeamMemberExecutor,
	getUC usecases.GetUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUseCase:  createUC,
		setTeamUseCase: setTeamUC,
		getUseCase:     getUC,
		logger:         log,
	}
}

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required,min=2,max=150"`
	Email        string `json:"email" binding:"omitempty,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FirstName    string `json:"first_name" binding:"max=100"`
	LastName     string `json:"last_name" binding:"max=100"`
	IsTeamMember bool   `json:"is_team_member"`
	Role         string `json:"role"`
}

type SetTeamMemberRequest struct {
	IsTeamMember *bool `json:"is_team_member" binding:"required"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsTeamMember: req.IsTeamMember,
		Role:         req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /users/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SetTeamMember handles PUT /users/:username/team-member
func (h *UserHandler) SetTeamMember(c *gin.Context) {
	var req SetTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.setTeamUseCase.Execute(c.Request.Context(), usecases.SetTeamMemberCommand{
		Username:     c.Param("username"),
		IsTeamMember: *req.IsTeamMember,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}
