package standings

import (
	"sort"

	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

// GroupStanding is one table row for a team inside its group. Derived data:
// recomputed from the current match set on every call, never persisted.
type GroupStanding struct {
	TeamID          string
	Played          int
	Won             int
	Drawn           int
	Lost            int
	GoalsFor        int
	GoalsAgainst    int
	GoalsDifference int
	Points          int
}

// Calculate builds the ranked table for one group. Matches missing either
// score are skipped entirely; a team with no played matches still appears
// with an all-zero row. Ordering is points, then goal difference, then goals
// for, descending. Ties beyond those three keys keep the input team order
// (stable sort) on purpose: no head-to-head or fair-play tie-break exists in
// this format.
//
// Callers must only pass matches whose team IDs belong to the given teams;
// anything else is a contract violation and the entry is ignored rather than
// fabricated.
func Calculate(teams []team.Team, matches []match.Match) []GroupStanding {
	rows := make([]GroupStanding, len(teams))
	byID := make(map[string]*GroupStanding, len(teams))
	for i, t := range teams {
		rows[i] = GroupStanding{TeamID: t.ID}
		byID[t.ID] = &rows[i]
	}

	for _, m := range matches {
		if !m.Scored() {
			continue
		}
		sa, okA := byID[m.TeamA]
		sb, okB := byID[m.TeamB]
		if !okA || !okB {
			continue
		}
		scoreA, scoreB := *m.ScoreA, *m.ScoreB

		sa.Played++
		sb.Played++
		sa.GoalsFor += scoreA
		sa.GoalsAgainst += scoreB
		sb.GoalsFor += scoreB
		sb.GoalsAgainst += scoreA

		switch {
		case scoreA > scoreB:
			sa.Won++
			sa.Points += 3
			sb.Lost++
		case scoreA < scoreB:
			sb.Won++
			sb.Points += 3
			sa.Lost++
		default:
			sa.Drawn++
			sb.Drawn++
			sa.Points++
			sb.Points++
		}

		sa.GoalsDifference = sa.GoalsFor - sa.GoalsAgainst
		sb.GoalsDifference = sb.GoalsFor - sb.GoalsAgainst
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessStanding(rows[i], rows[j])
	})

	return rows
}

// lessStanding orders a before b when a ranks higher.
func lessStanding(a, b GroupStanding) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalsDifference != b.GoalsDifference {
		return a.GoalsDifference > b.GoalsDifference
	}
	return a.GoalsFor > b.GoalsFor
}
