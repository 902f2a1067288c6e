package mappers

import (
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
)

type TechnologyMapper interface {
	CategoryToEntity(model *models.TechnologyCategoryModel) *technology.Category
	CategoryToModel(entity *technology.Category) *models.TechnologyCategoryModel
	ToEntity(model *models.TechnologyModel) *technology.Technology
	ToModel(entity *technology.Technology) *models.TechnologyModel
}

type TechnologyMapperImpl struct{}

func NewTechnologyMapper() TechnologyMapper {
	return &TechnologyMapperImpl{}
}

func (m *TechnologyMapperImpl) CategoryToEntity(model *models.TechnologyCategoryModel) *technology.Category {
	if model == nil {
		return nil
	}
	return technology.ReconstructCategory(model.ID, model.Name, model.Description, model.Color, model.CreatedAt, model.UpdatedAt)
}

func (m *TechnologyMapperImpl) CategoryToModel(entity *technology.Category) *models.TechnologyCategoryModel {
	if entity == nil {
		return nil
	}
	return &models.TechnologyCategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Color:       entity.Color(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *TechnologyMapperImpl) ToEntity(model *models.TechnologyModel) *technology.Technology {
	if model == nil {
		return nil
	}
	return technology.ReconstructTechnology(
		model.ID,
		model.Name,
		model.CategoryID,
		model.Description,
		model.Version,
		model.DocumentationURL,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TechnologyMapperImpl) ToModel(entity *technology.Technology) *models.TechnologyModel {
	if entity == nil {
		return nil
	}
	return &models.TechnologyModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		CategoryID:       entity.CategoryID(),
		Description:      entity.Description(),
		Version:          entity.Version(),
		DocumentationURL: entity.DocumentationURL(),
		Active:           entity.IsActive(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}
