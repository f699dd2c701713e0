package bracket

import (
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/standings"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

// Universe bundles everything one resolution pass may consult. Official
// results and a user's predictions each get their own Universe; the two are
// never mixed inside a single call.
type Universe struct {
	Teams      team.Index
	Placements map[string]string // "1A".."3L" -> team ID
	BestThirds []team.Team
	Knockout   []match.Match
	Scores     prediction.ScoreMap

	knockoutByID map[string]match.Match
}

// NewUniverse derives a complete resolution universe from a score map: group
// schedule, placements, best thirds, and the knockout fixtures all come from
// the same sparse map.
func NewUniverse(teams team.Index, scores prediction.ScoreMap) Universe {
	groupMatches := GroupStageMatches(teams, scores)
	adv := standings.AdvancedTeams(team.Groups(), teams.All(), groupMatches)

	return Universe{
		Teams:      teams,
		Placements: adv.PlacementIndex,
		BestThirds: adv.BestThirds,
		Knockout:   KnockoutMatches(scores),
		Scores:     scores,
	}
}

// KnockoutMatchByID finds a knockout fixture inside this universe.
func (u *Universe) KnockoutMatchByID(id string) (match.Match, bool) {
	if u.knockoutByID == nil {
		u.knockoutByID = make(map[string]match.Match, len(u.Knockout))
		for _, m := range u.Knockout {
			u.knockoutByID[m.ID] = m
		}
	}
	m, ok := u.knockoutByID[id]
	return m, ok
}

// Slot is the outcome of resolving one token: either a concrete team or the
// symbolic label to show while the slot is still open.
type Slot struct {
	Team  *team.Team
	Label string
}

func (s Slot) Resolved() bool {
	return s.Team != nil
}

// Resolve walks the bracket graph from the given token down to a concrete
// team, or reports the slot unresolved. Unresolvable conditions are expected
// steady state, not errors: missing placements, an incomplete best-thirds
// list, unplayed or drawn knockout matches (no shootout score exists in this
// format), and unknown match references all come back unresolved with the
// original token as label. A visited set bounds the walk so that cyclic slot
// data cannot hang the resolver.
func (u *Universe) Resolve(token string) Slot {
	visited := make(map[string]struct{})
	if t := u.resolve(token, visited); t != nil {
		return Slot{Team: t, Label: t.ID}
	}
	return Slot{Label: token}
}

func (u *Universe) resolve(raw string, visited map[string]struct{}) *team.Team {
	if _, seen := visited[raw]; seen {
		return nil
	}
	visited[raw] = struct{}{}

	token := ParseToken(raw)
	switch token.Kind {
	case TokenGroupPlacement:
		teamID, ok := u.Placements[raw]
		if !ok {
			return nil
		}
		return u.lookupTeam(teamID)

	case TokenThirdPlace:
		if token.Index < 0 || token.Index >= len(u.BestThirds) {
			return nil
		}
		t := u.BestThirds[token.Index]
		return &t

	case TokenMatchWinner, TokenMatchLoser:
		m, ok := u.KnockoutMatchByID(token.Match)
		if !ok {
			return nil
		}
		a := u.resolve(m.TeamA, visited)
		b := u.resolve(m.TeamB, visited)
		entry, ok := u.Scores.Get(token.Match)
		if a == nil || b == nil || !ok || !entry.Complete() {
			return nil
		}
		if *entry.A == *entry.B {
			// A drawn knockout score cannot name a winner.
			return nil
		}
		winner, loser := a, b
		if *entry.B > *entry.A {
			winner, loser = b, a
		}
		if token.Kind == TokenMatchWinner {
			return winner
		}
		return loser

	default:
		return u.lookupTeam(raw)
	}
}

func (u *Universe) lookupTeam(id string) *team.Team {
	t, ok := u.Teams.ByID(id)
	if !ok {
		return nil
	}
	return &t
}
