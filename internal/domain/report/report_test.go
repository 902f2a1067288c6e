package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
)

var (
	alice = Person{ID: 1, Username: "alice", TeamMember: true}
	bob   = Person{ID: 2, Username: "bob", TeamMember: true}
	ext   = Person{ID: 3, Username: "contractor", TeamMember: false}

	database = CategoryFact{ID: 1, Name: "Database"}
	frontend = CategoryFact{ID: 2, Name: "Frontend"}
	infra    = CategoryFact{ID: 3, Name: "Infrastructure"}

	postgres = TechnologyFact{ID: 10, Name: "Postgres", CategoryID: 1, CategoryName: "Database"}
	redis    = TechnologyFact{ID: 11, Name: "Redis", CategoryID: 1, CategoryName: "Database"}
	react    = TechnologyFact{ID: 20, Name: "React", CategoryID: 2, CategoryName: "Frontend"}
)

var base = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func fact(id uint, status vo.TicketStatus, owner *Person, techIDs ...uint) TicketFact {
	return TicketFact{
		ID:            id,
		Number:        fmt.Sprintf("SE-2025-%03d", id),
		Title:         fmt.Sprintf("ticket %d", id),
		Status:        status,
		ProjectID:     1,
		ProjectName:   "Alpha",
		Owner:         owner,
		TechnologyIDs: techIDs,
		ModifiedAt:    base.Add(time.Duration(id) * time.Minute),
	}
}

func techIndex() TechnologyIndex {
	return NewTechnologyIndex([]TechnologyFact{postgres, redis, react})
}

// ---------------------------------------------------------------------------
// Individual report
// ---------------------------------------------------------------------------

func TestBuildIndividual_AlphaScenario(t *testing.T) {
	tickets := []TicketFact{
		fact(1, vo.StatusCompleted, &alice, postgres.ID),
		fact(2, vo.StatusInProgress, &alice, postgres.ID),
	}

	r := BuildIndividual("Alice Smith", "alice", tickets, techIndex())

	assert.Equal(t, "Alice Smith", r.User)
	assert.Equal(t, 2, r.Summary.TotalTickets)
	assert.Equal(t, 1, r.Summary.Completed)
	assert.Equal(t, 1, r.Summary.InProgress)
	assert.Equal(t, 50.0, r.Summary.CompletionRate)
	assert.Equal(t, []NameCount{{Name: "Postgres", Count: 2}}, r.TechnologyExpertise.MostUsedTechnologies)
	assert.Equal(t, []NameCount{{Name: "Database", Count: 2}}, r.TechnologyExpertise.TechnologyCategories)
	assert.Equal(t, 1, r.TechnologyExpertise.TotalTechnologiesUsed)
	assert.Equal(t, []ProjectContribution{{Project: "Alpha", Total: 2, Completed: 1}}, r.ProjectContributions)

	require.Len(t, r.RecentWork, 2)
	assert.Equal(t, "SE-2025-002", r.RecentWork[0].TicketID)
	assert.Equal(t, []string{"Postgres"}, r.RecentWork[0].Technologies)
}

func TestBuildIndividual_NoTickets(t *testing.T) {
	r := BuildIndividual("bob", "bob", nil, techIndex())

	assert.Equal(t, 0, r.Summary.TotalTickets)
	assert.Equal(t, 0.0, r.Summary.CompletionRate)
	assert.Empty(t, r.TechnologyExpertise.MostUsedTechnologies)
	assert.NotNil(t, r.RecentWork)
	assert.NotNil(t, r.ProjectContributions)
}

func TestBuildIndividual_DeduplicatesOwnerAndAssignee(t *testing.T) {
	tk := fact(1, vo.StatusCompleted, &alice, redis.ID)
	tk.Assignees = []Person{alice}

	r := BuildIndividual("alice", "alice", []TicketFact{tk, tk}, techIndex())

	assert.Equal(t, 1, r.Summary.TotalTickets)
	assert.Equal(t, 100.0, r.Summary.CompletionRate)
	assert.Equal(t, []NameCount{{Name: "Redis", Count: 1}}, r.TechnologyExpertise.MostUsedTechnologies)
}

func TestBuildIndividual_TopTechnologiesBoundedAndOrdered(t *testing.T) {
	var techs []TechnologyFact
	var tickets []TicketFact
	for i := uint(1); i <= 12; i++ {
		techs = append(techs, TechnologyFact{ID: 100 + i, Name: fmt.Sprintf("tech-%02d", i), CategoryID: 1, CategoryName: "Database"})
	}
	// tech-12 used three times, tech-11 twice, the rest once
	tickets = append(tickets, fact(1, vo.StatusStaging, &alice, 112, 111, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110))
	tickets = append(tickets, fact(2, vo.StatusStaging, &alice, 112, 111))
	tickets = append(tickets, fact(3, vo.StatusStaging, &alice, 112))

	r := BuildIndividual("alice", "alice", tickets, NewTechnologyIndex(techs))
	most := r.TechnologyExpertise.MostUsedTechnologies

	require.Len(t, most, TopUserTechnologies)
	assert.Equal(t, NameCount{Name: "tech-12", Count: 3}, most[0])
	assert.Equal(t, NameCount{Name: "tech-11", Count: 2}, most[1])
	assert.Equal(t, "tech-01", most[2].Name)
	for i := 1; i < len(most); i++ {
		assert.GreaterOrEqual(t, most[i-1].Count, most[i].Count)
	}
	assert.Equal(t, 12, r.TechnologyExpertise.TotalTechnologiesUsed)
	assert.Equal(t, []NameCount{{Name: "Database", Count: 15}}, r.TechnologyExpertise.TechnologyCategories)
}

func TestBuildIndividual_SkipsDeletedTechnologies(t *testing.T) {
	tickets := []TicketFact{fact(1, vo.StatusStaging, &alice, postgres.ID, 999)}

	r := BuildIndividual("alice", "alice", tickets, techIndex())

	assert.Equal(t, []NameCount{{Name: "Postgres", Count: 1}}, r.TechnologyExpertise.MostUsedTechnologies)
	assert.Equal(t, []string{"Postgres"}, r.RecentWork[0].Technologies)
}

func TestBuildIndividual_SkipsTicketsOfDeletedProjects(t *testing.T) {
	orphan := fact(2, vo.StatusCompleted, &alice, postgres.ID)
	orphan.ProjectName = ""
	tickets := []TicketFact{fact(1, vo.StatusStaging, &alice, postgres.ID), orphan}

	r := BuildIndividual("alice", "alice", tickets, techIndex())

	assert.Equal(t, 1, r.Summary.TotalTickets)
	assert.Equal(t, 0, r.Summary.Completed)
	assert.Equal(t, []ProjectContribution{{Project: "Alpha", Total: 1}}, r.ProjectContributions)
	require.Len(t, r.RecentWork, 1)
	assert.Equal(t, "SE-2025-001", r.RecentWork[0].TicketID)
}

func TestBuildIndividual_RecentWorkLimitAndTieBreak(t *testing.T) {
	var tickets []TicketFact
	for i := uint(1); i <= 12; i++ {
		tk := fact(i, vo.StatusStaging, &alice)
		tk.ModifiedAt = base
		tickets = append(tickets, tk)
	}

	r := BuildIndividual("alice", "alice", tickets, techIndex())

	require.Len(t, r.RecentWork, RecentItems)
	assert.Equal(t, "SE-2025-012", r.RecentWork[0].TicketID)
	assert.Equal(t, "SE-2025-003", r.RecentWork[9].TicketID)
}

// ---------------------------------------------------------------------------
// Team technology report
// ---------------------------------------------------------------------------

func TestBuildTeamTechnology(t *testing.T) {
	t1 := fact(1, vo.StatusCompleted, &alice, postgres.ID, redis.ID)
	t1.Assignees = []Person{alice, ext}
	t2 := fact(2, vo.StatusStaging, nil, postgres.ID)
	t2.Assignees = []Person{bob}
	t3 := fact(3, vo.StatusStaging, nil, postgres.ID, 999)

	r := BuildTeamTechnology(2,
		[]CategoryFact{infra, frontend, database},
		[]TechnologyFact{react, redis, postgres},
		[]TicketFact{t1, t2, t3})

	assert.Equal(t, 2, r.TeamSize)
	assert.Equal(t, 2, r.TechnologyDiversity.TotalTechnologiesUsed)

	popular := r.TechnologyDiversity.MostPopularTechnologies
	require.Len(t, popular, 3)
	assert.Equal(t, TeamTechnologyStat{Name: "Postgres", Category: "Database", Tickets: 3, TeamMembersUsing: 2}, popular[0])
	assert.Equal(t, TeamTechnologyStat{Name: "Redis", Category: "Database", Tickets: 1, TeamMembersUsing: 1}, popular[1])
	assert.Equal(t, TeamTechnologyStat{Name: "React", Category: "Frontend", Tickets: 0, TeamMembersUsing: 0}, popular[2])

	assert.Equal(t, []TeamCategoryStat{
		{Category: "Database", Tickets: 4, TeamMembersUsing: 2},
		{Category: "Frontend", Tickets: 0, TeamMembersUsing: 0},
		{Category: "Infrastructure", Tickets: 0, TeamMembersUsing: 0},
	}, r.TechnologyDiversity.CategoryBreakdown)
}

func TestBuildTeamTechnology_TopFifteenByTicketsThenID(t *testing.T) {
	var techs []TechnologyFact
	for i := uint(20); i >= 1; i-- {
		techs = append(techs, TechnologyFact{ID: i, Name: fmt.Sprintf("t%02d", i), CategoryID: 1, CategoryName: "Database"})
	}
	tickets := []TicketFact{fact(1, vo.StatusStaging, nil, 20)}

	r := BuildTeamTechnology(0, []CategoryFact{database}, techs, tickets)
	popular := r.TechnologyDiversity.MostPopularTechnologies

	require.Len(t, popular, TopTeamTechnologies)
	assert.Equal(t, "t20", popular[0].Name)
	assert.Equal(t, "t01", popular[1].Name)
	assert.Equal(t, "t14", popular[14].Name)
	assert.Equal(t, 1, r.TechnologyDiversity.TotalTechnologiesUsed)
}

// ---------------------------------------------------------------------------
// Project report
// ---------------------------------------------------------------------------

func TestBuildProject_AlphaScenario(t *testing.T) {
	tickets := []TicketFact{
		fact(1, vo.StatusCompleted, &alice, postgres.ID),
		fact(2, vo.StatusInProgress, &alice, postgres.ID),
	}

	r := BuildProject(ProjectFact{ID: 1, Name: "Alpha"}, tickets, techIndex())

	assert.Equal(t, 2, r.Progress.TotalTickets)
	assert.Equal(t, 1, r.Progress.Completed)
	assert.Equal(t, 1, r.Progress.InProgress)
	assert.Equal(t, 50.0, r.Project.CompletionPercentage)
	assert.Equal(t, []NameCount{{Name: "Postgres", Count: 2}}, r.TechnologyStack)
	assert.Equal(t, []string{"alice"}, r.Contributors)

	require.Len(t, r.RecentActivity, 2)
	assert.Equal(t, "SE-2025-002", r.RecentActivity[0].TicketID)
	require.NotNil(t, r.RecentActivity[0].Owner)
	assert.Equal(t, "alice", *r.RecentActivity[0].Owner)
}

func TestBuildProject_StatusCountsSumToTotal(t *testing.T) {
	var tickets []TicketFact
	id := uint(1)
	for i, s := range vo.AllStatuses {
		for n := 0; n <= i; n++ {
			tickets = append(tickets, fact(id, s, nil))
			id++
		}
	}

	r := BuildProject(ProjectFact{ID: 1, Name: "Alpha"}, tickets, techIndex())
	p := r.Progress

	assert.Equal(t, len(tickets), p.TotalTickets)
	assert.Equal(t, p.TotalTickets, p.Staging+p.Accepted+p.InProgress+p.Completed+p.Rejected+p.Frozen)
	assert.Equal(t, 6, p.Frozen)
	assert.Nil(t, r.RecentActivity[0].Owner)
}

func TestBuildProject_ContributorsSortedAndDeduplicated(t *testing.T) {
	t1 := fact(1, vo.StatusStaging, &bob)
	t1.Assignees = []Person{alice, ext}
	t2 := fact(2, vo.StatusStaging, &alice)
	t2.Assignees = []Person{bob}

	r := BuildProject(ProjectFact{ID: 1, Name: "Alpha"}, []TicketFact{t1, t2}, techIndex())

	assert.Equal(t, []string{"alice", "bob", "contractor"}, r.Contributors)
}

func TestBuildProject_Empty(t *testing.T) {
	r := BuildProject(ProjectFact{ID: 5, Name: "Empty"}, nil, techIndex())
	assert.Equal(t, 0, r.Progress.TotalTickets)
	assert.Equal(t, 0.0, r.Project.CompletionPercentage)
	assert.Empty(t, r.Contributors)
	assert.Empty(t, r.TechnologyStack)
}
