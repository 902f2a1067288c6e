package usecases

import (
	"context"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	"github.com/orris-inc/setracker/internal/domain/user"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// ---- ticket repositories ----

type mockTicketRepository struct {
	CreateFunc         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByNumberFunc    func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	NumbersForYearFunc func(ctx context.Context, prefix string, year int) ([]string, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) NumbersForYear(ctx context.Context, prefix string, year int) ([]string, error) {
	if m.NumbersForYearFunc != nil {
		return m.NumbersForYearFunc(ctx, prefix, year)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	CreateFunc       func(ctx context.Context, a *ticket.Attachment) error
	DeleteFunc       func(ctx context.Context, ticketID, attachmentID uint) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, ticketID, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

// ---- catalog repositories ----

type mockProjectRepository struct {
	projects map[uint]*project.Project
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	return m.projects[id], nil
}

func (m *mockProjectRepository) GetByName(ctx context.Context, name string) (*project.Project, error) {
	for _, p := range m.projects {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProjectRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	p, _ := m.GetByName(ctx, name)
	return p != nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) ProgressByProject(ctx context.Context) (map[uint]project.Progress, error) {
	return nil, nil
}

type mockTechnologyRepository struct {
	technologies map[uint]*technology.Technology
}

func (m *mockTechnologyRepository) Create(ctx context.Context, t *technology.Technology) error {
	return nil
}
func (m *mockTechnologyRepository) Update(ctx context.Context, t *technology.Technology) error {
	return nil
}
func (m *mockTechnologyRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTechnologyRepository) GetByID(ctx context.Context, id uint) (*technology.Technology, error) {
	return m.technologies[id], nil
}

func (m *mockTechnologyRepository) GetByIDs(ctx context.Context, ids []uint) ([]*technology.Technology, error) {
	var result []*technology.Technology
	for _, id := range ids {
		if t, ok := m.technologies[id]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockTechnologyRepository) GetByName(ctx context.Context, name string) (*technology.Technology, error) {
	return nil, nil
}
func (m *mockTechnologyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}
func (m *mockTechnologyRepository) List(ctx context.Context, categoryName string) ([]*technology.Technology, error) {
	return nil, nil
}
func (m *mockTechnologyRepository) UsageCounts(ctx context.Context) (map[uint]int, error) {
	return nil, nil
}

type mockCategoryRepository struct {
	categories []*technology.Category
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *technology.Category) error {
	return nil
}
func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*technology.Category, error) {
	return nil, nil
}
func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*technology.Category, error) {
	return nil, nil
}
func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}
func (m *mockCategoryRepository) List(ctx context.Context) ([]*technology.Category, error) {
	return m.categories, nil
}

// ---- users ----

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
	var result []*user.User
	for _, name := range usernames {
		if u, _ := m.GetByUsername(ctx, name); u != nil {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := m.GetByUsername(ctx, username)
	return u != nil, nil
}

func (m *mockUserRepository) ListTeamMembers(ctx context.Context) ([]*user.User, error) {
	var result []*user.User
	for _, u := range m.users {
		if u.IsTeamMember() {
			result = append(result, u)
		}
	}
	return result, nil
}

// ---- collaborators ----

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context, year int) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context, year int) (string, error) {
	return m.NextFunc(ctx, year)
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockNotifier struct {
	sent []OwnerAssignedNotification
	err  error
}

func (m *mockNotifier) NotifyOwnerAssigned(ctx context.Context, n OwnerAssignedNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

type mockMetrics struct {
	created   []string
	conflicts int
}

func (m *mockMetrics) TicketCreated(ticketType string) { m.created = append(m.created, ticketType) }
func (m *mockMetrics) TicketNumberConflict()           { m.conflicts++ }

type mockMarkdown struct{}

func (mockMarkdown) Render(src string) (string, error) {
	return "<p>" + src + "</p>\n", nil
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
