package usecases

import (
	"context"
	"sort"

	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/shared/errors"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// mockCategoryRepository keeps categories in insertion order and assigns IDs.
type mockCategoryRepository struct {
	categories []*technology.Category
	CreateFunc func(ctx context.Context, c *technology.Category) error
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *technology.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	if err := c.SetID(uint(len(m.categories) + 1)); err != nil {
		return err
	}
	m.categories = append(m.categories, c)
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*technology.Category, error) {
	for _, c := range m.categories {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*technology.Category, error) {
	for _, c := range m.categories {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	c, _ := m.GetByName(ctx, name)
	return c != nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*technology.Category, error) {
	return m.categories, nil
}

type mockTechnologyRepository struct {
	technologies []*technology.Technology
	usage        map[uint]int
}

func (m *mockTechnologyRepository) Create(ctx context.Context, t *technology.Technology) error {
	if err := t.SetID(uint(len(m.technologies) + 1)); err != nil {
		return err
	}
	m.technologies = append(m.technologies, t)
	return nil
}

func (m *mockTechnologyRepository) Update(ctx context.Context, t *technology.Technology) error {
	return nil
}

func (m *mockTechnologyRepository) Delete(ctx context.Context, id uint) error {
	for i, t := range m.technologies {
		if t.ID() == id {
			m.technologies = append(m.technologies[:i], m.technologies[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("technology not found")
}

func (m *mockTechnologyRepository) GetByID(ctx context.Context, id uint) (*technology.Technology, error) {
	for _, t := range m.technologies {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTechnologyRepository) GetByIDs(ctx context.Context, ids []uint) ([]*technology.Technology, error) {
	return nil, nil
}

func (m *mockTechnologyRepository) GetByName(ctx context.Context, name string) (*technology.Technology, error) {
	for _, t := range m.technologies {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTechnologyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	t, _ := m.GetByName(ctx, name)
	return t != nil, nil
}

func (m *mockTechnologyRepository) List(ctx context.Context, categoryName string) ([]*technology.Technology, error) {
	result := make([]*technology.Technology, 0, len(m.technologies))
	result = append(result, m.technologies...)
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

func (m *mockTechnologyRepository) UsageCounts(ctx context.Context) (map[uint]int, error) {
	return m.usage, nil
}

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
