package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/domain/user"
	vo "github.com/orris-inc/setracker/internal/domain/user/valueobjects"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type CreateUserCommand struct {
	Username     string
	Email        string
	Password     string
	FirstName    string
	LastName     string
	IsTeamMember bool
	Role         string
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "team_member", cmd.IsTeamMember)

	var email *vo.Email
	if cmd.Email != "" {
		parsed, err := vo.NewEmail(cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		email = parsed
	}

	if err := vo.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := user.NewUser(cmd.Username, email, cmd.FirstName, cmd.LastName, cmd.IsTeamMember, authorization.ParseUserRole(cmd.Role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, u.Username())
	if err != nil {
		uc.logger.Errorw("failed to check username", "username", u.Username(), "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("username %q is already taken", u.Username()))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	u.SetPasswordHash(hash)

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("username %q is already taken", u.Username()))
		}
		uc.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "id", u.ID(), "username", u.Username())
	return dto.ToUserDTO(u), nil
}
