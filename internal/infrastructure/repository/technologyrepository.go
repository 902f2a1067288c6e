package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/constants"
	"github.com/orris-inc/setracker/internal/shared/db"
	apperrors "github.com/orris-inc/setracker/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.TechnologyMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db, mapper: mappers.NewTechnologyMapper()}
}

func (r *CategoryRepository) Create(ctx context.Context, c *technology.Category) error {
	model := r.mapper.CategoryToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create technology category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*technology.Category, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*technology.Category, error) {
	return r.getOne(ctx, "name = ?", name)
}

func (r *CategoryRepository) getOne(ctx context.Context, query string, arg interface{}) (*technology.Category, error) {
	var model models.TechnologyCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get technology category: %w", err)
	}
	return r.mapper.CategoryToEntity(&model), nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TechnologyCategoryModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*technology.Category, error) {
	var modelList []models.TechnologyCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list technology categories: %w", err)
	}

	categories := make([]*technology.Category, len(modelList))
	for i := range modelList {
		categories[i] = r.mapper.CategoryToEntity(&modelList[i])
	}
	return categories, nil
}

type TechnologyRepository struct {
	db     *gorm.DB
	mapper mappers.TechnologyMapper
}

func NewTechnologyRepository(db *gorm.DB) *TechnologyRepository {
	return &TechnologyRepository{db: db, mapper: mappers.NewTechnologyMapper()}
}

func (r *TechnologyRepository) Create(ctx context.Context, t *technology.Technology) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create technology: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TechnologyRepository) Update(ctx context.Context, t *technology.Technology) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TechnologyModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"category_id":       model.CategoryID,
			"description":       model.Description,
			"version":           model.Version,
			"documentation_url": model.DocumentationURL,
			"active":            model.Active,
			"updated_at":        model.UpdatedAt,
		}).Error; err != nil {
		return fmt.Errorf("failed to update technology: %w", err)
	}
	return nil
}

// Delete removes the technology; ticket links to it cascade.
func (r *TechnologyRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TechnologyModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete technology: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("technology %d not found", id))
	}
	return nil
}

func (r *TechnologyRepository) GetByID(ctx context.Context, id uint) (*technology.Technology, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *TechnologyRepository) GetByName(ctx context.Context, name string) (*technology.Technology, error) {
	return r.getOne(ctx, "name = ?", name)
}

func (r *TechnologyRepository) getOne(ctx context.Context, query string, arg interface{}) (*technology.Technology, error) {
	var model models.TechnologyModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get technology: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *TechnologyRepository) GetByIDs(ctx context.Context, ids []uint) ([]*technology.Technology, error) {
	if len(ids) == 0 {
		return []*technology.Technology{}, nil
	}

	var modelList []models.TechnologyModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get technologies by IDs: %w", err)
	}
	return r.toEntities(modelList), nil
}

func (r *TechnologyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TechnologyModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check technology name: %w", err)
	}
	return count > 0, nil
}

// List returns technologies ordered by category name then name.
func (r *TechnologyRepository) List(ctx context.Context, categoryName string) ([]*technology.Technology, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TechnologyModel{}).
		Joins(fmt.Sprintf("JOIN %s c ON c.id = %s.category_id", constants.TableTechCategories, constants.TableTechnologies))

	if categoryName != "" {
		query = query.Where("c.name = ?", categoryName)
	}

	var modelList []models.TechnologyModel
	if err := query.
		Order("c.name ASC").
		Order(constants.TableTechnologies + ".name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	return r.toEntities(modelList), nil
}

type usageRow struct {
	TechnologyID uint
	UsageCount   int
}

func (r *TechnologyRepository) UsageCounts(ctx context.Context) (map[uint]int, error) {
	var rows []usageRow
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketTechnologyModel{}).
		Select("technology_id, COUNT(*) AS usage_count").
		Group("technology_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count technology usage: %w", err)
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.TechnologyID] = row.UsageCount
	}
	return counts, nil
}

func (r *TechnologyRepository) toEntities(modelList []models.TechnologyModel) []*technology.Technology {
	techs := make([]*technology.Technology, len(modelList))
	for i := range modelList {
		techs[i] = r.mapper.ToEntity(&modelList[i])
	}
	return techs
}
