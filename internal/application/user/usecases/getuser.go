package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, username string) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user", "username", username, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %q not found", username))
	}
	return dto.ToUserDTO(u), nil
}
