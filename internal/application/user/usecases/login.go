package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

const invalidCredentials = "invalid username or password"

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	limiter  LoginLimiter
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	limiter LoginLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	key := cmd.Username + "|" + cmd.IPAddress
	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, key)
		if err != nil {
			uc.logger.Warnw("login limiter unavailable", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login throttled", "username", cmd.Username, "ip", cmd.IPAddress)
			return nil, errors.NewForbiddenError("too many failed login attempts, try again later")
		}
	}

	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if u == nil || !u.CanLogin() || uc.hasher.Verify(cmd.Password, u.PasswordHash()) != nil {
		uc.recordFailure(ctx, key)
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	tokens, err := uc.tokens.Generate(TokenSubject{
		UserID:       u.ID(),
		Username:     u.Username(),
		IsTeamMember: u.IsTeamMember(),
		Role:         u.Role(),
	})
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	if uc.limiter != nil {
		if err := uc.limiter.Reset(ctx, key); err != nil {
			uc.logger.Warnw("failed to reset login limiter", "error", err)
		}
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())

	return &dto.LoginDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		User:         dto.ToUserDTO(u),
	}, nil
}

func (uc *LoginUseCase) recordFailure(ctx context.Context, key string) {
	if uc.limiter == nil {
		return
	}
	if err := uc.limiter.RecordFailure(ctx, key); err != nil {
		uc.logger.Warnw("failed to record login failure", "error", err)
	}
}

// RefreshTokenUseCase exchanges a refresh token for a new pair. The subject is
// reloaded so team membership and role changes take effect.
type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, tokens: tokens, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*dto.LoginDTO, error) {
	subject, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, subject.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CanLogin() {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	tokens, err := uc.tokens.Generate(TokenSubject{
		UserID:       u.ID(),
		Username:     u.Username(),
		IsTeamMember: u.IsTeamMember(),
		Role:         u.Role(),
	})
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &dto.LoginDTO{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
