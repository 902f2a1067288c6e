package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	tvo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/domain/user"
	uvo "github.com/orris-inc/setracker/internal/domain/user/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/testutil"
	"github.com/orris-inc/setracker/internal/shared/authorization"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

type fixture struct {
	t           *testing.T
	ctx         context.Context
	db          *gorm.DB
	users       *UserRepository
	projects    *ProjectRepository
	categories  *CategoryRepository
	techs       *TechnologyRepository
	tickets     *TicketRepository
	attachments *AttachmentRepository
	reports     *ReportRepository
	nextNumber  int64
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewSQLiteDB(t)
	return &fixture{
		t:           t,
		ctx:         context.Background(),
		db:          db,
		users:       NewUserRepository(db, logger.NewLogger()),
		projects:    NewProjectRepository(db),
		categories:  NewCategoryRepository(db),
		techs:       NewTechnologyRepository(db),
		tickets:     NewTicketRepository(db),
		attachments: NewAttachmentRepository(db),
		reports:     NewReportRepository(db),
	}
}

func (f *fixture) user(username string, teamMember bool) *user.User {
	f.t.Helper()
	email, err := uvo.NewEmail(username + "@example.com")
	require.NoError(f.t, err)
	u, err := user.NewUser(username, email, "", "", teamMember, authorization.RoleUser)
	require.NoError(f.t, err)
	require.NoError(f.t, f.users.Create(f.ctx, u))
	return u
}

func (f *fixture) project(name string) *project.Project {
	f.t.Helper()
	p, err := project.NewProject(name, name+" description")
	require.NoError(f.t, err)
	require.NoError(f.t, f.projects.Create(f.ctx, p))
	return p
}

func (f *fixture) category(name string) *technology.Category {
	f.t.Helper()
	c, err := technology.NewCategory(name, "", "")
	require.NoError(f.t, err)
	require.NoError(f.t, f.categories.Create(f.ctx, c))
	return c
}

func (f *fixture) technology(name string, category *technology.Category) *technology.Technology {
	f.t.Helper()
	tech, err := technology.NewTechnology(name, category.ID(), "", "", "")
	require.NoError(f.t, err)
	require.NoError(f.t, f.techs.Create(f.ctx, tech))
	return tech
}

type ticketOption func(*ticket.Ticket)

func withOwner(u *user.User) ticketOption {
	return func(t *ticket.Ticket) {
		id := u.ID()
		t.AssignOwner(&id)
	}
}

func withAssignees(users ...*user.User) ticketOption {
	return func(t *ticket.Ticket) {
		ids := make([]uint, len(users))
		for i, u := range users {
			ids[i] = u.ID()
		}
		t.SetAssignees(ids)
	}
}

func withTechnologies(techs ...*technology.Technology) ticketOption {
	return func(t *ticket.Ticket) {
		ids := make([]uint, len(techs))
		for i, tech := range techs {
			ids[i] = tech.ID()
		}
		t.SetTechnologies(ids)
	}
}

func withStatus(status tvo.TicketStatus) ticketOption {
	return func(t *ticket.Ticket) {
		_ = t.ChangeStatus(status)
	}
}

func withDetail(detail ticket.Detail) ticketOption {
	return func(t *ticket.Ticket) {
		_ = t.SetDetail(detail)
	}
}

func (f *fixture) ticket(title string, ticketType tvo.TicketType, p *project.Project, opts ...ticketOption) *ticket.Ticket {
	f.t.Helper()
	tk, err := ticket.NewTicket(title, title+" description", ticketType, p.ID(), tvo.PriorityMedium, ticket.Reporter{
		Name:    "Reporter",
		Contact: "reporter@example.com",
	})
	require.NoError(f.t, err)
	for _, opt := range opts {
		opt(tk)
	}
	f.nextNumber++
	require.NoError(f.t, tk.AssignNumber(ticket.FormatNumber("SE", 2024, f.nextNumber)))
	require.NoError(f.t, f.tickets.Create(f.ctx, tk))
	return tk
}

func mustNewUser(t *testing.T, username string) *user.User {
	t.Helper()
	email, err := uvo.NewEmail(username + "@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(username, email, "", "", false, authorization.RoleUser)
	require.NoError(t, err)
	return u
}
