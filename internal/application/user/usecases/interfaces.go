package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenSubject is the identity embedded in issued tokens.
type TokenSubject struct {
	UserID       uint
	Username     string
	IsTeamMember bool
	Role         authorization.UserRole
}

type TokenService interface {
	Generate(subject TokenSubject) (*TokenPair, error)
	// ParseRefresh verifies a refresh token and returns the subject it was issued for.
	ParseRefresh(refreshToken string) (*TokenSubject, error)
}

// LoginLimiter throttles failed logins. A nil limiter disables throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type SetTeamMemberExecutor interface {
	Execute(ctx context.Context, cmd SetTeamMemberCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, refreshToken string) (*dto.LoginDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, username string) (*dto.UserDTO, error)
}
