package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/shared/constants"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase   usecases.LoginExecutor
	refreshUseCase usecases.RefreshTokenExecutor
	getUserUseCase usecases.GetUserExecutor
	logger         logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	getUserUC usecases.GetUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		refreshUseCase: refreshUC,
		getUserUseCase: getUserUC,
		logger:         logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		h.logger.Warnw("login failed", "username", req.Username, "ip", c.ClientIP(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.refreshUseCase.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(constants.ContextKeyUsername)
	if username == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("not authenticated"))
		return
	}

	result, err := h.getUserUseCase.Execute(c.Request.Context(), username)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
