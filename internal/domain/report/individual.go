package report

import (
	"sort"

	"github.com/orris-inc/setracker/internal/domain/shared"
)

type IndividualReport struct {
	User                 string                `json:"user"`
	Username             string                `json:"username"`
	Summary              IndividualSummary     `json:"summary"`
	TechnologyExpertise  TechnologyExpertise   `json:"technology_expertise"`
	ProjectContributions []ProjectContribution `json:"project_contributions"`
	RecentWork           []RecentWorkItem      `json:"recent_work"`
}

type IndividualSummary struct {
	TotalTickets   int     `json:"total_tickets"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	CompletionRate float64 `json:"completion_rate"`
}

type TechnologyExpertise struct {
	MostUsedTechnologies  []NameCount `json:"most_used_technologies"`
	TechnologyCategories  []NameCount `json:"technology_categories"`
	TotalTechnologiesUsed int         `json:"total_technologies_used"`
}

type ProjectContribution struct {
	Project   string `json:"project"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type RecentWorkItem struct {
	TicketID     string   `json:"ticket_id"`
	Title        string   `json:"title"`
	Project      string   `json:"project"`
	Status       string   `json:"status"`
	Technologies []string `json:"technologies"`
}

// BuildIndividual aggregates the tickets a team member owns or is assigned
// to. tickets may contain duplicates (owner and assignee at once); each
// ticket is counted once.
func BuildIndividual(displayName, username string, tickets []TicketFact, techs TechnologyIndex) IndividualReport {
	tickets = withProject(dedupeTickets(tickets))

	summary := IndividualSummary{TotalTickets: len(tickets)}
	projects := make(map[string]*ProjectContribution)
	for _, t := range tickets {
		pc, ok := projects[t.ProjectName]
		if !ok {
			pc = &ProjectContribution{Project: t.ProjectName}
			projects[t.ProjectName] = pc
		}
		pc.Total++

		switch {
		case t.Status.IsCompleted():
			summary.Completed++
			pc.Completed++
		case t.Status.IsInProgress():
			summary.InProgress++
		}
	}
	summary.CompletionRate = shared.Percentage(summary.Completed, summary.TotalTickets)

	ranked := tallyTechnologies(tickets, techs)
	mostUsed := make([]NameCount, 0, min(len(ranked), TopUserTechnologies))
	categoryCounts := make(map[string]int)
	for i, tally := range ranked {
		if i < TopUserTechnologies {
			mostUsed = append(mostUsed, NameCount{Name: tally.tech.Name, Count: tally.count})
		}
		categoryCounts[tally.tech.CategoryName] += tally.count
	}

	categories := make([]NameCount, 0, len(categoryCounts))
	for name, count := range categoryCounts {
		categories = append(categories, NameCount{Name: name, Count: count})
	}
	sortNameCounts(categories)

	contributions := make([]ProjectContribution, 0, len(projects))
	for _, pc := range projects {
		contributions = append(contributions, *pc)
	}
	sort.Slice(contributions, func(i, j int) bool {
		return contributions[i].Project < contributions[j].Project
	})

	recent := mostRecent(tickets, RecentItems)
	work := make([]RecentWorkItem, 0, len(recent))
	for _, t := range recent {
		work = append(work, RecentWorkItem{
			TicketID:     t.Number,
			Title:        t.Title,
			Project:      t.ProjectName,
			Status:       t.Status.String(),
			Technologies: technologyNames(t.TechnologyIDs, techs),
		})
	}

	return IndividualReport{
		User:     displayName,
		Username: username,
		Summary:  summary,
		TechnologyExpertise: TechnologyExpertise{
			MostUsedTechnologies:  mostUsed,
			TechnologyCategories:  categories,
			TotalTechnologiesUsed: len(ranked),
		},
		ProjectContributions: contributions,
		RecentWork:           work,
	}
}
