package repository

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/setracker/internal/domain/ticket"
	tvo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/models"
	"github.com/orris-inc/setracker/internal/shared/errors"
)

func TestTicketRepository_CreateAndLoad(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice", true)
	bob := f.user("bob", true)
	dbs := f.category("Databases")
	postgres := f.technology("Postgres", dbs)
	alpha := f.project("Alpha")

	bug := ticket.BugDetail{
		Category:         tvo.BugErrorPage,
		URLLocation:      "/login",
		StepsToReproduce: "open the page",
		ExpectedResults:  "a form",
		ActualResults:    "a 500",
	}
	created := f.ticket("Login fails", tvo.TypeBug, alpha,
		withOwner(alice),
		withAssignees(bob, alice),
		withTechnologies(postgres),
		withDetail(bug),
	)
	require.NotZero(t, created.ID())

	got, err := f.tickets.GetByNumber(f.ctx, created.Number())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, tvo.TypeBug, got.Type())
	assert.Equal(t, tvo.StatusStaging, got.Status())
	require.NotNil(t, got.OwnerID())
	assert.Equal(t, alice.ID(), *got.OwnerID())
	assert.ElementsMatch(t, []uint{alice.ID(), bob.ID()}, got.AssigneeIDs())
	assert.Equal(t, []uint{postgres.ID()}, got.TechnologyIDs())
	assert.Equal(t, bug, got.Detail())
	assert.Equal(t, "Reporter", got.Reporter().Name)

	missing, err := f.tickets.GetByNumber(f.ctx, "SE-1999-001")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_DuplicateNumber(t *testing.T) {
	f := newFixture(t)
	alpha := f.project("Alpha")
	first := f.ticket("first", tvo.TypeTask, alpha)

	dup, err := ticket.NewTicket("second", "body", tvo.TypeTask, alpha.ID(), tvo.PriorityLow, ticket.Reporter{Name: "r", Contact: "c"})
	require.NoError(t, err)
	require.NoError(t, dup.AssignNumber(first.Number()))

	err = f.tickets.Create(f.ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
	assert.Zero(t, dup.ID(), "a failed create must not adopt an ID")
}

func TestTicketRepository_UpdateReplacesLinksAndDetail(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice", true)
	bob := f.user("bob", true)
	dbs := f.category("Databases")
	postgres := f.technology("Postgres", dbs)
	redis := f.technology("Redis", dbs)
	alpha := f.project("Alpha")

	tk := f.ticket("Cache work", tvo.TypeTask, alpha,
		withAssignees(alice),
		withTechnologies(postgres),
		withDetail(ticket.TaskDetail{
			TaskType:            tvo.TaskResearch,
			DetailedDescription: "look into it",
			AcceptanceCriteria:  "a writeup",
		}),
	)

	require.NoError(t, tk.ChangeStatus(tvo.StatusInProgress))
	require.NoError(t, tk.ChangePriority(tvo.PriorityCritical))
	tk.SetAssignees([]uint{bob.ID()})
	tk.SetTechnologies([]uint{redis.ID()})
	updated := ticket.TaskDetail{
		TaskType:            tvo.TaskMaintenance,
		DetailedDescription: "upgrade",
		AcceptanceCriteria:  "new version live",
	}
	require.NoError(t, tk.SetDetail(updated))
	require.NoError(t, f.tickets.Update(f.ctx, tk))

	got, err := f.tickets.GetByID(f.ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusInProgress, got.Status())
	assert.Equal(t, tvo.PriorityCritical, got.Priority())
	assert.Equal(t, []uint{bob.ID()}, got.AssigneeIDs())
	assert.Equal(t, []uint{redis.ID()}, got.TechnologyIDs())
	assert.Equal(t, updated, got.Detail())

	var taskRows int64
	require.NoError(t, f.db.Model(&models.TaskModel{}).Where("ticket_id = ?", tk.ID()).Count(&taskRows).Error)
	assert.Equal(t, int64(1), taskRows)
}

func TestTicketRepository_UpdateRejectsStaleCopy(t *testing.T) {
	f := newFixture(t)
	dbs := f.category("Databases")
	postgres := f.technology("Postgres", dbs)
	alpha := f.project("Alpha")
	tk := f.ticket("Slow queries", tvo.TypeTask, alpha)

	first, err := f.tickets.GetByNumber(f.ctx, tk.Number())
	require.NoError(t, err)
	second, err := f.tickets.GetByNumber(f.ctx, tk.Number())
	require.NoError(t, err)

	first.SetTechnologies([]uint{postgres.ID()})
	require.NoError(t, f.tickets.Update(f.ctx, first))
	assert.Equal(t, 2, first.Version())

	require.NoError(t, second.ChangeStatus(tvo.StatusCompleted))
	err = f.tickets.Update(f.ctx, second)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ticket.ErrVersionConflict))

	got, err := f.tickets.GetByID(f.ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{postgres.ID()}, got.TechnologyIDs())
	assert.Equal(t, tvo.StatusStaging, got.Status())
	assert.Equal(t, 2, got.Version())

	require.NoError(t, got.ChangeStatus(tvo.StatusCompleted))
	require.NoError(t, f.tickets.Update(f.ctx, got))

	final, err := f.tickets.GetByID(f.ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tvo.StatusCompleted, final.Status())
	assert.Equal(t, []uint{postgres.ID()}, final.TechnologyIDs())
	assert.Equal(t, 3, final.Version())
}

func TestTicketRepository_UpdateDeletedTicket(t *testing.T) {
	f := newFixture(t)
	dbs := f.category("Databases")
	postgres := f.technology("Postgres", dbs)
	alpha := f.project("Alpha")
	tk := f.ticket("Gone", tvo.TypeTask, alpha)

	require.NoError(t, f.db.Where("ticket_id = ?", tk.ID()).Delete(&models.TicketTechnologyModel{}).Error)
	require.NoError(t, f.db.Delete(&models.TicketModel{}, tk.ID()).Error)

	tk.SetTechnologies([]uint{postgres.ID()})
	err := f.tickets.Update(f.ctx, tk)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	var links int64
	require.NoError(t, f.db.Model(&models.TicketTechnologyModel{}).Where("ticket_id = ?", tk.ID()).Count(&links).Error)
	assert.Zero(t, links)
}

func TestTicketRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	alpha := f.project("Alpha")
	beta := f.project("Beta")

	f.ticket("a1", tvo.TypeTask, alpha, withStatus(tvo.StatusCompleted))
	f.ticket("a2", tvo.TypeFeature, alpha)
	f.ticket("b1", tvo.TypeTask, beta, withStatus(tvo.StatusCompleted))

	all, err := f.tickets.List(f.ctx, ticket.TicketFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b1", all[0].Title(), "newest first")

	completed := tvo.StatusCompleted
	projectID := alpha.ID()
	filtered, err := f.tickets.List(f.ctx, ticket.TicketFilter{Status: &completed, ProjectID: &projectID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a1", filtered[0].Title())
}

func TestTicketRepository_NumbersForYear(t *testing.T) {
	f := newFixture(t)
	alpha := f.project("Alpha")
	f.ticket("a", tvo.TypeTask, alpha)
	f.ticket("b", tvo.TypeTask, alpha)

	numbers, err := f.tickets.NumbersForYear(f.ctx, "SE", 2024)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"SE-2024-001", "SE-2024-002"}, numbers)

	none, err := f.tickets.NumbersForYear(f.ctx, "SE", 2025)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttachmentRepository(t *testing.T) {
	f := newFixture(t)
	alpha := f.project("Alpha")
	tk := f.ticket("with files", tvo.TypeTask, alpha)
	other := f.ticket("other", tvo.TypeTask, alpha)

	a, err := ticket.NewAttachment(tk.ID(), "uploads/screen.png", "screen.png")
	require.NoError(t, err)
	require.NoError(t, f.attachments.Create(f.ctx, a))
	require.NotZero(t, a.ID())

	list, err := f.attachments.ListByTicket(f.ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "screen.png", list[0].OriginalName())

	err = f.attachments.Delete(f.ctx, other.ID(), a.ID())
	assert.True(t, errors.IsNotFoundError(err), "attachment of another ticket")

	require.NoError(t, f.attachments.Delete(f.ctx, tk.ID(), a.ID()))
	list, err = f.attachments.ListByTicket(f.ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, list)
}
