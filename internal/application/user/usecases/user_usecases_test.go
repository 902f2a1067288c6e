package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

func seedAlice(t *testing.T, repo *mockUserRepository) {
	t.Helper()
	_, err := NewCreateUserUseCase(repo, plainHasher{}, &mockLogger{}).Execute(context.Background(), CreateUserCommand{
		Username:     "alice",
		Email:        "Alice@Example.com",
		Password:     "s3cret-pass",
		FirstName:    "alice",
		LastName:     "smith",
		IsTeamMember: true,
	})
	require.NoError(t, err)
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CreateUserCommand
		errCheck func(error) bool
	}{
		{
			name: "valid external user",
			cmd:  CreateUserCommand{Username: "carol", Email: "carol@example.com", Password: "long-enough"},
		},
		{
			name:     "duplicate username",
			cmd:      CreateUserCommand{Username: "alice", Email: "a2@example.com", Password: "long-enough"},
			errCheck: errors.IsConflictError,
		},
		{
			name:     "short password",
			cmd:      CreateUserCommand{Username: "dave", Email: "dave@example.com", Password: "short"},
			errCheck: errors.IsValidationError,
		},
		{
			name:     "bad email",
			cmd:      CreateUserCommand{Username: "dave", Email: "not-an-email", Password: "long-enough"},
			errCheck: errors.IsValidationError,
		},
		{
			name:     "bad username",
			cmd:      CreateUserCommand{Username: "da ve", Email: "dave@example.com", Password: "long-enough"},
			errCheck: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{}
			seedAlice(t, repo)
			uc := NewCreateUserUseCase(repo, plainHasher{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cmd.Username, result.Username)
			assert.False(t, result.IsTeamMember)
			assert.Equal(t, "user", result.Role)
		})
	}
}

func TestCreateUserUseCase_StoresHashAndDisplayName(t *testing.T) {
	repo := &mockUserRepository{}
	seedAlice(t, repo)

	u := repo.users[0]
	assert.Equal(t, "hashed:s3cret-pass", u.PasswordHash())
	assert.Equal(t, "Alice Smith", u.DisplayName())
	assert.Equal(t, "alice@example.com", u.Email().String())
	assert.Equal(t, authorization.RoleUser, u.Role())
}

func TestSetTeamMemberUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{}
	seedAlice(t, repo)
	uc := NewSetTeamMemberUseCase(repo, &mockLogger{})
	ctx := context.Background()

	result, err := uc.Execute(ctx, SetTeamMemberCommand{Username: "alice", IsTeamMember: false})
	require.NoError(t, err)
	assert.False(t, result.IsTeamMember)
	assert.Equal(t, 1, repo.updates)

	_, err = uc.Execute(ctx, SetTeamMemberCommand{Username: "alice", IsTeamMember: false})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates, "unchanged flag is not saved")

	_, err = uc.Execute(ctx, SetTeamMemberCommand{Username: "nobody", IsTeamMember: true})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLoginUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		cmd      LoginCommand
		errCheck func(error) bool
	}{
		{name: "valid credentials", cmd: LoginCommand{Username: "alice", Password: "s3cret-pass"}},
		{name: "wrong password", cmd: LoginCommand{Username: "alice", Password: "nope-nope"}, errCheck: errors.IsUnauthorizedError},
		{name: "unknown user", cmd: LoginCommand{Username: "zed", Password: "s3cret-pass"}, errCheck: errors.IsUnauthorizedError},
		{name: "missing password", cmd: LoginCommand{Username: "alice"}, errCheck: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{}
			seedAlice(t, repo)
			tokens := &mockTokenService{}
			uc := NewLoginUseCase(repo, plainHasher{}, tokens, nil, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "got %v", err)
				assert.Empty(t, tokens.issued)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access-alice", result.AccessToken)
			require.Len(t, tokens.issued, 1)
			assert.True(t, tokens.issued[0].IsTeamMember)
		})
	}
}

func TestLoginUseCase_Execute_ThrottlesRepeatedFailures(t *testing.T) {
	repo := &mockUserRepository{}
	seedAlice(t, repo)
	limiter := newCountingLimiter(2)
	uc := NewLoginUseCase(repo, plainHasher{}, &mockTokenService{}, limiter, &mockLogger{})
	ctx := context.Background()
	bad := LoginCommand{Username: "alice", Password: "wrong-pass", IPAddress: "10.0.0.1"}

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(ctx, bad)
		assert.True(t, errors.IsUnauthorizedError(err))
	}

	_, err := uc.Execute(ctx, LoginCommand{Username: "alice", Password: "s3cret-pass", IPAddress: "10.0.0.1"})
	assert.True(t, errors.IsForbiddenError(err), "correct password is still throttled")

	_, err = uc.Execute(ctx, LoginCommand{Username: "alice", Password: "s3cret-pass", IPAddress: "10.0.0.2"})
	require.NoError(t, err, "other client is unaffected")
	assert.Empty(t, limiter.failures["alice|10.0.0.2"])
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{}
	seedAlice(t, repo)
	tokens := &mockTokenService{}
	uc := NewRefreshTokenUseCase(repo, tokens, &mockLogger{})

	result, err := uc.Execute(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "access-alice", result.AccessToken)

	_, err = uc.Execute(context.Background(), "garbage")
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = uc.Execute(context.Background(), "refresh-9")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestGetUserUseCase_Execute(t *testing.T) {
	repo := &mockUserRepository{}
	seedAlice(t, repo)
	uc := NewGetUserUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", result.DisplayName)

	_, err = uc.Execute(context.Background(), "bob")
	assert.True(t, errors.IsNotFoundError(err))
}
