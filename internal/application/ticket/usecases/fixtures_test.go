package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/domain/project"
	"github.com/orris-inc/setracker/internal/domain/technology"
	"github.com/orris-inc/setracker/internal/domain/ticket"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/domain/user"
	uservo "github.com/orris-inc/setracker/internal/domain/user/valueobjects"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

var fixtureTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type fixture struct {
	tickets     *mockTicketRepository
	attachments *mockAttachmentRepository
	projects    *mockProjectRepository
	techs       *mockTechnologyRepository
	categories  *mockCategoryRepository
	users       *mockUserRepository
	notifier    *mockNotifier
	metrics     *mockMetrics
	tx          *mockTxRunner
	log         *mockLogger
}

// newFixture seeds project Alpha, technology Postgres (Database), team members
// alice (1) and bob (2) and the external user carol (3).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	return &fixture{
		tickets:     &mockTicketRepository{},
		attachments: &mockAttachmentRepository{},
		projects: &mockProjectRepository{projects: map[uint]*project.Project{
			1: project.ReconstructProject(1, "Alpha", "", true, nil, nil, nil, nil, fixtureTime, fixtureTime),
		}},
		techs: &mockTechnologyRepository{technologies: map[uint]*technology.Technology{
			1: technology.ReconstructTechnology(1, "Postgres", 1, "", "", "", true, fixtureTime, fixtureTime),
		}},
		categories: &mockCategoryRepository{categories: []*technology.Category{
			technology.ReconstructCategory(1, "Database", "", "#336791", fixtureTime, fixtureTime),
		}},
		users: &mockUserRepository{users: []*user.User{
			newTestUser(t, 1, "alice", "Alice", "Smith", true),
			newTestUser(t, 2, "bob", "", "", true),
			newTestUser(t, 3, "carol", "Carol", "Jones", false),
		}},
		notifier: &mockNotifier{},
		metrics:  &mockMetrics{},
		tx:       &mockTxRunner{},
		log:      &mockLogger{},
	}
}

func newTestUser(t *testing.T, id uint, username, first, last string, team bool) *user.User {
	t.Helper()

	email, err := uservo.NewEmail(username + "@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, username, email, first, last, team, authorization.RoleUser, "", true, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return u
}

func persistedTicket(t *testing.T, id uint, number string, ticketType vo.TicketType) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.ReconstructTicket(
		id, number, "Login fails", "Users cannot log in", ticketType, 1,
		[]uint{1}, vo.StatusStaging, vo.PriorityMedium, nil, nil,
		ticket.Reporter{Name: "Jane", Contact: "jane@example.com"},
		"", nil, ticket.AuditInfo{}, fixtureTime, fixtureTime,
	)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint { return &v }
