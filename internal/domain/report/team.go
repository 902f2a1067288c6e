package report

import "sort"

type TeamTechnologyReport struct {
	TeamSize            int                 `json:"team_size"`
	TechnologyDiversity TechnologyDiversity `json:"technology_diversity"`
}

type TechnologyDiversity struct {
	TotalTechnologiesUsed   int                  `json:"total_technologies_used"`
	MostPopularTechnologies []TeamTechnologyStat `json:"most_popular_technologies"`
	CategoryBreakdown       []TeamCategoryStat   `json:"category_breakdown"`
}

type TeamTechnologyStat struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Tickets          int    `json:"tickets"`
	TeamMembersUsing int    `json:"team_members_using"`
}

type TeamCategoryStat struct {
	Category         string `json:"category"`
	Tickets          int    `json:"tickets"`
	TeamMembersUsing int    `json:"team_members_using"`
}

type usage struct {
	tickets int
	users   map[uint]struct{}
}

func (u *usage) add(assignees []Person) {
	u.tickets++
	for _, p := range assignees {
		if p.TeamMember {
			u.users[p.ID] = struct{}{}
		}
	}
}

func newUsage() *usage {
	return &usage{users: make(map[uint]struct{})}
}

// BuildTeamTechnology computes team-wide technology usage. user counts are
// distinct internal team members among the assigned users of the tickets.
// A category's ticket count is the number of ticket-technology links of its
// technologies, so one ticket tagged with two technologies of a category
// contributes two.
func BuildTeamTechnology(teamSize int, categories []CategoryFact, technologies []TechnologyFact, tickets []TicketFact) TeamTechnologyReport {
	techs := NewTechnologyIndex(technologies)

	techUsage := make(map[uint]*usage, len(technologies))
	for _, t := range technologies {
		techUsage[t.ID] = newUsage()
	}
	catUsage := make(map[uint]*usage, len(categories))
	for _, c := range categories {
		catUsage[c.ID] = newUsage()
	}

	for _, t := range dedupeTickets(tickets) {
		for _, techID := range t.TechnologyIDs {
			tech, ok := techs[techID]
			if !ok {
				continue
			}
			techUsage[techID].add(t.Assignees)
			if cu, ok := catUsage[tech.CategoryID]; ok {
				cu.add(t.Assignees)
			}
		}
	}

	stats := make([]TeamTechnologyStat, 0, len(technologies))
	ids := make([]uint, 0, len(technologies))
	used := 0
	for _, tech := range technologies {
		u := techUsage[tech.ID]
		if u.tickets > 0 {
			used++
		}
		stats = append(stats, TeamTechnologyStat{
			Name:             tech.Name,
			Category:         tech.CategoryName,
			Tickets:          u.tickets,
			TeamMembersUsing: len(u.users),
		})
		ids = append(ids, tech.ID)
	}
	sort.Sort(byTicketsThenID{stats: stats, ids: ids})
	if len(stats) > TopTeamTechnologies {
		stats = stats[:TopTeamTechnologies]
	}

	breakdown := make([]TeamCategoryStat, 0, len(categories))
	for _, c := range categories {
		u := catUsage[c.ID]
		breakdown = append(breakdown, TeamCategoryStat{
			Category:         c.Name,
			Tickets:          u.tickets,
			TeamMembersUsing: len(u.users),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Tickets != breakdown[j].Tickets {
			return breakdown[i].Tickets > breakdown[j].Tickets
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return TeamTechnologyReport{
		TeamSize: teamSize,
		TechnologyDiversity: TechnologyDiversity{
			TotalTechnologiesUsed:   used,
			MostPopularTechnologies: stats,
			CategoryBreakdown:       breakdown,
		},
	}
}

// byTicketsThenID sorts stats and their parallel technology IDs together.
type byTicketsThenID struct {
	stats []TeamTechnologyStat
	ids   []uint
}

func (s byTicketsThenID) Len() int { return len(s.stats) }

func (s byTicketsThenID) Less(i, j int) bool {
	if s.stats[i].Tickets != s.stats[j].Tickets {
		return s.stats[i].Tickets > s.stats[j].Tickets
	}
	return s.ids[i] < s.ids[j]
}

func (s byTicketsThenID) Swap(i, j int) {
	s.stats[i], s.stats[j] = s.stats[j], s.stats[i]
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
}
