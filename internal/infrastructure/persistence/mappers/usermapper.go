package mappers

import (
	"fmt"

	"github.com/orris-inc/setracker/internal/domain/user"
	vo "github.com/orris-inc/setracker/internal/domain/user/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) *models.UserModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	userEntity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		email,
		model.FirstName,
		model.LastName,
		model.IsTeamMember,
		authorization.ParseUserRole(model.Role),
		model.PasswordHash,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return userEntity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email().String(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		IsTeamMember: entity.IsTeamMember(),
		Role:         entity.Role().String(),
		PasswordHash: entity.PasswordHash(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}
