package bracket

import (
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

type slotPair struct {
	id string
	a  string
	b  string
}

// Fixed 48-team knockout wiring. The resolver's correctness depends on this
// table verbatim: slot tokens reference these IDs and only these.
var (
	r32Structure = []slotPair{
		{"73", "2A", "2B"},
		{"74", "1E", "3rd-1-A/B/C/D/F"},
		{"75", "1F", "2C"},
		{"76", "1C", "2F"},
		{"77", "1I", "3rd-2-C/D/F/G/H"},
		{"78", "2E", "2I"},
		{"79", "1A", "3rd-3-C/E/F/H/I"},
		{"80", "1L", "3rd-4-E/H/I/J/K"},
		{"81", "1D", "3rd-5-B/E/F/I/J"},
		{"82", "1G", "3rd-6-A/E/H/I/J"},
		{"83", "2K", "2L"},
		{"84", "1H", "2J"},
		{"85", "1B", "3rd-7-E/F/G/I/J"},
		{"86", "1J", "2H"},
		{"87", "1K", "3rd-8-D/E/I/J/L"},
		{"88", "2D", "2G"},
	}

	r16Structure = []slotPair{
		{"89", "W74", "W77"},
		{"90", "W73", "W75"},
		{"91", "W76", "W78"},
		{"92", "W79", "W80"},
		{"93", "W83", "W84"},
		{"94", "W81", "W82"},
		{"95", "W86", "W88"},
		{"96", "W85", "W87"},
	}

	qfStructure = []slotPair{
		{"97", "W89", "W90"},
		{"98", "W93", "W94"},
		{"99", "W91", "W92"},
		{"100", "W95", "W96"},
	}

	sfStructure = []slotPair{
		{"101", "W97", "W98"},
		{"102", "W99", "W100"},
	}

	// The final pairs the semifinal winners; the third-place match pairs the
	// semifinal losers.
	finalStructure = []slotPair{
		{"103", "L101", "L102"},
		{"104", "W101", "W102"},
	}
)

// KnockoutMatches materializes the 32 knockout fixtures with the given
// score map applied. Slots keep their symbolic tokens; resolution is the
// resolver's job.
func KnockoutMatches(scores prediction.ScoreMap) []match.Match {
	out := make([]match.Match, 0, 32)
	appendStage := func(stage []slotPair) {
		for _, pair := range stage {
			m := match.Match{
				ID:    pair.id,
				Group: match.GroupKnockout,
				TeamA: pair.a,
				TeamB: pair.b,
			}
			if entry, ok := scores.Get(pair.id); ok {
				m.ScoreA = entry.A
				m.ScoreB = entry.B
			}
			out = append(out, m)
		}
	}
	appendStage(r32Structure)
	appendStage(r16Structure)
	appendStage(qfStructure)
	appendStage(sfStructure)
	appendStage(finalStructure)

	return out
}

// GroupStageMatches materializes the full round-robin schedule of every group
// with the given score map applied. Pairings follow seed order so that match
// IDs stay deterministic.
func GroupStageMatches(teams team.Index, scores prediction.ScoreMap) []match.Match {
	var out []match.Match
	for _, group := range team.Groups() {
		groupTeams := teams.ByGroup(group)
		for i := 0; i < len(groupTeams); i++ {
			for j := i + 1; j < len(groupTeams); j++ {
				m := match.Match{
					ID:    match.GroupMatchID(group, i, j),
					Group: group,
					TeamA: groupTeams[i].ID,
					TeamB: groupTeams[j].ID,
				}
				if entry, ok := scores.Get(m.ID); ok {
					m.ScoreA = entry.A
					m.ScoreB = entry.B
				}
				out = append(out, m)
			}
		}
	}

	return out
}
