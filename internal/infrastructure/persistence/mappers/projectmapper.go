package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
)

// ProjectMapper converts between projects and their rows. Members live in
// a link table and are passed separately.
type ProjectMapper interface {
	ToEntity(model *models.ProjectModel, memberIDs []uint) *project.Project
	ToModel(entity *project.Project) *models.ProjectModel
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToEntity(model *models.ProjectModel, memberIDs []uint) *project.Project {
	if model == nil {
		return nil
	}
	return project.ReconstructProject(
		model.ID,
		model.Name,
		model.Description,
		model.Active,
		model.LeadID,
		memberIDs,
		fromDate(model.StartDate),
		fromDate(model.TargetCompletion),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ProjectMapperImpl) ToModel(entity *project.Project) *models.ProjectModel {
	if entity == nil {
		return nil
	}
	return &models.ProjectModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		Description:      entity.Description(),
		Active:           entity.IsActive(),
		LeadID:           entity.LeadID(),
		StartDate:        toDate(entity.StartDate()),
		TargetCompletion: toDate(entity.TargetCompletion()),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
