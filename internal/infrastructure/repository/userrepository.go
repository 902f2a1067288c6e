package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/db"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// UserRepository implements user.Repository on GORM.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "username", model.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created successfully", "id", model.ID, "username", model.Username)
	return nil
}

// Update persists profile, membership, role and password changes.
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":          model.Email,
			"first_name":     model.FirstName,
			"last_name":      model.LastName,
			"is_team_member": model.IsTeamMember,
			"role":           model.Role,
			"password_hash":  model.PasswordHash,
			"active":         model.Active,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var modelList []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// GetByUsername retrieves a user by login name; usernames are matched exactly.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*user.User, error) {
	if len(usernames) == 0 {
		return []*user.User{}, nil
	}

	var modelList []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("username IN ?", usernames).
		Order("username ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by usernames: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ListTeamMembers(ctx context.Context) ([]*user.User, error) {
	var modelList []*models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("is_team_member = ?", true).
		Order("username ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
