package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type mockUserRepository struct {
	users      []*user.User
	updates    int
	CreateFunc func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	if err := u.SetID(uint(len(m.users) + 1)); err != nil {
		return err
	}
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.updates++
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
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
	u, _ := m.GetByUsername(ctx, username)
	return u != nil, nil
}

func (m *mockUserRepository) ListTeamMembers(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

// plainHasher prefixes passwords instead of hashing them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	issued []TokenSubject
}

func (m *mockTokenService) Generate(subject TokenSubject) (*TokenPair, error) {
	m.issued = append(m.issued, subject)
	return &TokenPair{
		AccessToken:  "access-" + subject.Username,
		RefreshToken: fmt.Sprintf("refresh-%d", subject.UserID),
		ExpiresIn:    900,
	}, nil
}

func (m *mockTokenService) ParseRefresh(token string) (*TokenSubject, error) {
	var id uint
	if _, err := fmt.Sscanf(strings.TrimPrefix(token, "refresh-"), "%d", &id); err != nil || !strings.HasPrefix(token, "refresh-") {
		return nil, fmt.Errorf("invalid token")
	}
	return &TokenSubject{UserID: id}, nil
}

// countingLimiter blocks a key after max recorded failures.
type countingLimiter struct {
	max      int
	failures map[string]int
}

func newCountingLimiter(max int) *countingLimiter {
	return &countingLimiter{max: max, failures: make(map[string]int)}
}

func (l *countingLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.failures[key] < l.max, nil
}

func (l *countingLimiter) RecordFailure(ctx context.Context, key string) error {
	l.failures[key]++
	return nil
}

func (l *countingLimiter) Reset(ctx context.Context, key string) error {
	delete(l.failures, key)
	return nil
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
