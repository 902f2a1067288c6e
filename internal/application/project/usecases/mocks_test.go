package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type mockProjectRepository struct {
	CreateFunc            func(ctx context.Context, p *project.Project) error
	UpdateFunc            func(ctx context.Context, p *project.Project) error
	DeleteFunc            func(ctx context.Context, id uint) error
	GetByIDFunc           func(ctx context.Context, id uint) (*project.Project, error)
	ExistsByNameFunc      func(ctx context.Context, name string) (bool, error)
	ListFunc              func(ctx context.Context) ([]*project.Project, error)
	ProgressByProjectFunc func(ctx context.Context) (map[uint]project.Progress, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) ProgressByProject(ctx context.Context) (map[uint]project.Progress, error) {
	if m.ProgressByProjectFunc != nil {
		return m.ProgressByProjectFunc(ctx)
	}
	return map[uint]project.Progress{}, nil
}

type mockUserRepository struct {
	users []*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var result []*user.User
	for _, id := range ids {
		if u, _ := m.GetByID(ctx, id); u != nil {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) ListTeamMembers(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func newMockUsers(t *testing.T) *mockUserRepository {
	t.Helper()

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var users []*user.User
	for i, name := range []string{"alice", "bob"} {
		u, err := user.ReconstructUser(uint(i+1), name, nil, "", "", true, authorization.RoleUser, "", true, ts, ts)
		require.NoError(t, err)
		users = append(users, u)
	}
	return &mockUserRepository{users: users}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
