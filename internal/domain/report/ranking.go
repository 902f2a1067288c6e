package report

import (
	"sort"
)

// NameCount is one entry of a ranked name -> occurrences breakdown.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type techTally struct {
	tech  TechnologyFact
	count int
}

// tallyTechnologies counts technology occurrences across tickets, skipping
// unresolvable technology IDs, and returns them ordered by count descending
// then technology ID ascending.
func tallyTechnologies(tickets []TicketFact, techs TechnologyIndex) []techTally {
	counts := make(map[uint]*techTally)
	for _, t := range tickets {
		for _, id := range t.TechnologyIDs {
			tech, ok := techs[id]
			if !ok {
				continue
			}
			if tally, ok := counts[id]; ok {
				tally.count++
				continue
			}
			counts[id] = &techTally{tech: tech, count: 1}
		}
	}

	ranked := make([]techTally, 0, len(counts))
	for _, tally := range counts {
		ranked = append(ranked, *tally)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].tech.ID < ranked[j].tech.ID
	})
	return ranked
}

// sortNameCounts orders by count descending then name ascending.
func sortNameCounts(items []NameCount) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
}

// mostRecent returns up to limit tickets ordered by modification time
// descending then ID descending. The input is not modified.
func mostRecent(tickets []TicketFact, limit int) []TicketFact {
	sorted := make([]TicketFact, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].ModifiedAt.Equal(sorted[j].ModifiedAt) {
			return sorted[i].ModifiedAt.After(sorted[j].ModifiedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func dedupeTickets(tickets []TicketFact) []TicketFact {
	seen := make(map[uint]struct{}, len(tickets))
	result := make([]TicketFact, 0, len(tickets))
	for _, t := range tickets {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		result = append(result, t)
	}
	return result
}

// withProject drops tickets whose project vanished while the facts were read.
func withProject(tickets []TicketFact) []TicketFact {
	result := make([]TicketFact, 0, len(tickets))
	for _, t := range tickets {
		if t.ProjectName != "" {
			result = append(result, t)
		}
	}
	return result
}

func technologyNames(ids []uint, techs TechnologyIndex) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if tech, ok := techs[id]; ok {
			names = append(names, tech.Name)
		}
	}
	return names
}
