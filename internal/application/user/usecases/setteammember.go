package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type SetTeamMemberCommand struct {
	Username     string
	IsTeamMember bool
}

type SetTeamMemberUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetTeamMemberUseCase(userRepo user.Repository, logger logger.Interface) *SetTeamMemberUseCase {
	return &SetTeamMemberUseCase{userRepo: userRepo, logger: logger}
}

func (uc *SetTeamMemberUseCase) Execute(ctx context.Context, cmd SetTeamMemberCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing set team member use case", "username", cmd.Username, "team_member", cmd.IsTeamMember)

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %q not found", cmd.Username))
	}

	if !u.SetTeamMember(cmd.IsTeamMember) {
		return dto.ToUserDTO(u), nil
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "username", cmd.Username, "error", err)
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}
