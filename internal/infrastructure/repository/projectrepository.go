package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/project"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/db"
	apperrors "github.com/orris-inc/setracker/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		return replaceMembers(tx, model.ID, p.MemberIDs())
	})
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"name":              model.Name,
				"description":       model.Description,
				"active":            model.Active,
				"lead_id":           model.LeadID,
				"start_date":        model.StartDate,
				"target_completion": model.TargetCompletion,
				"updated_at":        model.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		return replaceMembers(tx, model.ID, p.MemberIDs())
	})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes the project; tickets, their details, links and attachments
// go with it through ON DELETE CASCADE.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ProjectModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project %d not found", id))
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	return r.getOne(ctx, "name = ?", name)
}

func (r *ProjectRepository) getOne(ctx context.Context, query string, arg interface{}) (*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ProjectModel
	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	members, err := loadMembers(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&model, members[model.ID]), nil
}

func (r *ProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project name: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ProjectModel
	if err := tx.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(modelList) == 0 {
		return []*project.Project{}, nil
	}

	ids := make([]uint, len(modelList))
	for i := range modelList {
		ids[i] = modelList[i].ID
	}
	members, err := loadMembers(tx, ids)
	if err != nil {
		return nil, err
	}

	projects := make([]*project.Project, len(modelList))
	for i := range modelList {
		projects[i] = r.mapper.ToEntity(&modelList[i], members[modelList[i].ID])
	}
	return projects, nil
}

type progressRow struct {
	ProjectID uint
	Total     int
	Completed int
}

func (r *ProjectRepository) ProgressByProject(ctx context.Context) (map[uint]project.Progress, error) {
	var rows []progressRow
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Select("project_id, COUNT(*) AS total, SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS completed", vo.StatusCompleted.String()).
		Group("project_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate project progress: %w", err)
	}

	progress := make(map[uint]project.Progress, len(rows))
	for _, row := range rows {
		progress[row.ProjectID] = project.Progress{Total: row.Total, Completed: row.Completed}
	}
	return progress, nil
}

func replaceMembers(tx *gorm.DB, projectID uint, memberIDs []uint) error {
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMemberModel{}).Error; err != nil {
		return err
	}
	if len(memberIDs) == 0 {
		return nil
	}
	rows := make([]models.ProjectMemberModel, len(memberIDs))
	for i, userID := range memberIDs {
		rows[i] = models.ProjectMemberModel{ProjectID: projectID, UserID: userID}
	}
	return tx.Create(&rows).Error
}

func loadMembers(tx *gorm.DB, projectIDs []uint) (map[uint][]uint, error) {
	var rows []models.ProjectMemberModel
	if err := tx.Where("project_id IN ?", projectIDs).
		Order("user_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load project members: %w", err)
	}

	members := make(map[uint][]uint, len(projectIDs))
	for _, row := range rows {
		members[row.ProjectID] = append(members[row.ProjectID], row.UserID)
	}
	return members, nil
}
