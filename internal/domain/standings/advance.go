package standings

import (
	"sort"

	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

// Advancement holds the teams leaving the group stage: one winner and one
// runner-up per started group, plus the eight statistically best third-place
// teams across all groups, in rank order.
type Advancement struct {
	Winners        []team.Team
	RunnersUp      []team.Team
	BestThirds     []team.Team
	PlacementIndex map[string]string // "1A".."3L" -> team ID
}

const bestThirdCount = 8

type thirdCandidate struct {
	team     team.Team
	standing GroupStanding
}

// AdvancedTeams computes advancement across all groups from the full match
// set. A group contributes nothing until at least one of its matches carries
// a score; past that gate, a placed team is still only included when its own
// played count is positive. The second guard is redundant for complete
// round-robin schedules but kept for staggered partial data.
func AdvancedTeams(groups []string, teams []team.Team, matches []match.Match) Advancement {
	adv := Advancement{PlacementIndex: make(map[string]string)}
	var thirds []thirdCandidate

	byGroupTeams := make(map[string][]team.Team)
	for _, t := range teams {
		byGroupTeams[t.Group] = append(byGroupTeams[t.Group], t)
	}
	byGroupMatches := make(map[string][]match.Match)
	for _, m := range matches {
		byGroupMatches[m.Group] = append(byGroupMatches[m.Group], m)
	}
	teamByID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	for _, group := range groups {
		groupTeams := byGroupTeams[group]
		groupMatches := byGroupMatches[group]
		if len(groupTeams) == 0 {
			continue
		}

		hasAnyScore := false
		for _, m := range groupMatches {
			if m.ScoreA != nil {
				hasAnyScore = true
				break
			}
		}
		if !hasAnyScore {
			continue
		}

		table := Calculate(groupTeams, groupMatches)
		for rank := 0; rank < 3 && rank < len(table); rank++ {
			row := table[rank]
			adv.PlacementIndex[placementToken(rank+1, group)] = row.TeamID

			if row.Played == 0 {
				continue
			}
			t, ok := teamByID[row.TeamID]
			if !ok {
				continue
			}
			switch rank {
			case 0:
				adv.Winners = append(adv.Winners, t)
			case 1:
				adv.RunnersUp = append(adv.RunnersUp, t)
			case 2:
				thirds = append(thirds, thirdCandidate{team: t, standing: row})
			}
		}
	}

	sort.SliceStable(thirds, func(i, j int) bool {
		return lessStanding(thirds[i].standing, thirds[j].standing)
	})
	if len(thirds) > bestThirdCount {
		thirds = thirds[:bestThirdCount]
	}
	for _, candidate := range thirds {
		adv.BestThirds = append(adv.BestThirds, candidate.team)
	}

	return adv
}

func placementToken(rank int, group string) string {
	return string(rune('0'+rank)) + group
}
