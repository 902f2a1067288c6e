package technology

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/setracker/internal/application/technology/usecases"
	"github.com/orris-inc/setracker/internal/shared/logger"
	"github.com/orris-inc/setracker/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

type CreateTechnologyRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	CategoryID       uint   `json:"category_id" binding:"required,gt=0"`
	Description      string `json:"description"`
	Version          string `json:"version" binding:"max=50"`
	DocumentationURL string `json:"documentation_url" binding:"omitempty,url"`
}

// Handler serves both catalog resources: categories and technologies.
type Handler struct {
	createCategoryUC   usecases.CreateCategoryExecutor
	listCategoriesUC   usecases.ListCategoriesExecutor
	createTechnologyUC usecases.CreateTechnologyExecutor
	deleteTechnologyUC usecases.DeleteTechnologyExecutor
	listTechnologiesUC usecases.ListTechnologiesExecutor
	logger             logger.Interface
}

func NewHandler(
	createCategoryUC usecases.CreateCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	createTechnologyUC usecases.CreateTechnologyExecutor,
	deleteTechnologyUC usecases.DeleteTechnologyExecutor,
	listTechnologiesUC usecases.ListTechnologiesExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createCategoryUC:   createCategoryUC,
		listCategoriesUC:   listCategoriesUC,
		createTechnologyUC: createTechnologyUC,
		deleteTechnologyUC: deleteTechnologyUC,
		listTechnologiesUC: listTechnologiesUC,
		logger:             logger,
	}
}

// CreateCategory handles POST /categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// ListCategories handles GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTechnology handles POST /technologies
func (h *Handler) CreateTechnology(c *gin.Context) {
	var req CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create technology", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTechnologyUC.Execute(c.Request.Context(), usecases.CreateTechnologyCommand{
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		Description:      req.Description,
		Version:          req.Version,
		DocumentationURL: req.DocumentationURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Technology created successfully")
}

// ListTechnologies handles GET /technologies?category=
func (h *Handler) ListTechnologies(c *gin.Context) {
	result, err := h.listTechnologiesUC.Execute(c.Request.Context(), usecases.ListTechnologiesQuery{
		Category: c.Query("category"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteTechnology handles DELETE /technologies/:id
func (h *Handler) DeleteTechnology(c *gin.Context) {
	technologyID, err := utils.ParseUintParam(c, "id", "technology")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTechnologyUC.Execute(c.Request.Context(), technologyID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
