package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockLoginUC struct {
	got usecases.LoginCommand
	err error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*dto.LoginDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LoginDTO{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    900,
		User:         &dto.UserDTO{Username: cmd.Username},
	}, nil
}

type mockRefreshUC struct {
	err error
}

func (m *mockRefreshUC) Execute(_ context.Context, _ string) (*dto.LoginDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LoginDTO{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 900}, nil
}

type mockGetUserUC struct {
	got string
}

func (m *mockGetUserUC) Execute(_ context.Context, username string) (*dto.UserDTO, error) {
	m.got = username
	if username == "ghost" {
		return nil, errors.NewNotFoundError("user not found")
	}
	return &dto.UserDTO{Username: username, IsTeamMember: true}, nil
}

type mockCreateUserUC struct {
	got usecases.CreateUserCommand
	err error
}

func (m *mockCreateUserUC) Execute(_ context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.UserDTO{ID: 1, Username: cmd.Username}, nil
}

type mockSetTeamUC struct {
	got usecases.SetTeamMemberCommand
}

func (m *mockSetTeamUC) Execute(_ context.Context, cmd usecases.SetTeamMemberCommand) (*dto.UserDTO, error) {
	m.got = cmd
	return &dto.UserDTO{Username: cmd.Username, IsTeamMember: cmd.IsTeamMember}, nil
}

// =====================================================================
// AuthHandler
// =====================================================================

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
	}{
		{"success", LoginRequest{Username: "alice", Password: "secret-pass"}, nil, http.StatusOK},
		{"missing password", map[string]string{"username": "alice"}, nil, http.StatusBadRequest},
		{"bad credentials", LoginRequest{Username: "alice", Password: "wrong"}, errors.NewUnauthorizedError("invalid username or password"), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockLoginUC{err: tt.ucErr}
			handler := NewAuthHandler(uc, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", tt.body)
			c.Request.RemoteAddr = "10.0.0.7:5555"
			handler.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "10.0.0.7", uc.got.IPAddress)
				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.Contains(t, string(resp.Data), `"access_token":"access"`)
			}
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	handler := NewAuthHandler(nil, &mockRefreshUC{}, nil, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "refresh"})
	handler.Refresh(c)
	assert.Equal(t, http.StatusOK, w.Code)

	handler = NewAuthHandler(nil, &mockRefreshUC{err: errors.NewUnauthorizedError("invalid refresh token")}, nil, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "stale"})
	handler.Refresh(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		uc := &mockGetUserUC{}
		handler := NewAuthHandler(nil, nil, uc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
		testutil.SetAuthContext(c, 3, "alice", true)
		handler.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", uc.got)
	})

	t.Run("anonymous", func(t *testing.T) {
		handler := NewAuthHandler(nil, nil, &mockGetUserUC{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
		handler.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =====================================================================
// UserHandler
// =====================================================================

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockCreateUserUC{}
		handler := NewUserHandler(uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", CreateUserRequest{
			Username:     "bob",
			Email:        "bob@example.com",
			Password:     "long-enough",
			IsTeamMember: true,
		})
		handler.CreateUser(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, uc.got.IsTeamMember)
		assert.Equal(t, "bob@example.com", uc.got.Email)
	})

	t.Run("short password", func(t *testing.T) {
		handler := NewUserHandler(&mockCreateUserUC{}, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", CreateUserRequest{Username: "bob", Password: "short"})
		handler.CreateUser(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		uc := &mockCreateUserUC{err: errors.NewConflictError("username bob already exists")}
		handler := NewUserHandler(uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", CreateUserRequest{Username: "bob", Password: "long-enough"})
		handler.CreateUser(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_SetTeamMember(t *testing.T) {
	t.Run("revoke", func(t *testing.T) {
		uc := &mockSetTeamUC{}
		handler := NewUserHandler(nil, uc, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/api/users/bob/team-member", map[string]bool{"is_team_member": false})
		testutil.SetURLParam(c, "username", "bob")
		handler.SetTeamMember(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.SetTeamMemberCommand{Username: "bob", IsTeamMember: false}, uc.got)
	})

	t.Run("missing flag", func(t *testing.T) {
		handler := NewUserHandler(nil, &mockSetTeamUC{}, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/api/users/bob/team-member", map[string]string{})
		testutil.SetURLParam(c, "username", "bob")
		handler.SetTeamMember(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	handler := NewUserHandler(nil, nil, &mockGetUserUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users/ghost", nil)
	testutil.SetURLParam(c, "username", "ghost")
	handler.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
