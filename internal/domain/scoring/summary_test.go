package scoring

import (
	"fmt"
	"testing"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func entry(a, b int) prediction.ScoreEntry {
	return prediction.ScoreEntry{A: intPtr(a), B: intPtr(b)}
}

func entryPtr(a, b int) *prediction.ScoreEntry {
	e := entry(a, b)
	return &e
}

// fullTournamentTeams generates 48 synthetic teams, four per group.
func fullTournamentTeams() team.Index {
	var teams []team.Team
	for _, g := range team.Groups() {
		for i := 1; i <= 4; i++ {
			id := fmt.Sprintf("%s%d", g, i)
			teams = append(teams, team.Team{ID: id, Name: id, Group: g})
		}
	}
	return team.NewIndex(teams)
}

// completeTournament scores every match: each group pairing goes 1-0 to the
// lower seed, every knockout match goes 1-0 to side A. The whole bracket
// resolves under such a map.
func completeTournament() prediction.ScoreMap {
	scores := make(prediction.ScoreMap)
	for _, g := range team.Groups() {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				scores[match.GroupMatchID(g, i, j)] = entry(1, 0)
			}
		}
	}
	for id := match.FirstKnockoutID; id <= match.LastKnockoutID; id++ {
		scores[fmt.Sprintf("%d", id)] = entry(1, 0)
	}
	return scores
}

func TestScoreResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		phase      match.Phase
		predicted  *prediction.ScoreEntry
		official   prediction.ScoreEntry
		wantPoints int
		wantRule   string
	}{
		{"no prediction", match.PhaseGroups, nil, entry(2, 1), 0, RuleNoPrediction},
		{"half prediction", match.PhaseGroups, &prediction.ScoreEntry{A: intPtr(1)}, entry(2, 1), 0, RuleNoPrediction},
		{"exact groups", match.PhaseGroups, entryPtr(2, 1), entry(2, 1), 10, RuleExact},
		{"exact final", match.PhaseFinal, entryPtr(0, 3), entry(0, 3), 45, RuleExact},
		{"exact draw is exact not drawDiff", match.PhaseGroups, entryPtr(1, 1), entry(1, 1), 10, RuleExact},
		{"different draw groups", match.PhaseGroups, entryPtr(0, 0), entry(2, 2), 4, RuleDrawDiff},
		{"different draw r32", match.PhaseR32, entryPtr(1, 1), entry(0, 0), 8, RuleDrawDiff},
		{"different draw r16 scores zero", match.PhaseR16, entryPtr(1, 1), entry(2, 2), 0, RuleDrawDiff},
		{"winner plus winner goals", match.PhaseQF, entryPtr(3, 0), entry(3, 1), 16, RuleWinnerGoals},
		{"winner plus loser goals r16", match.PhaseR16, entryPtr(2, 1), entry(3, 1), 10, RuleLoserGoals},
		{"winner only", match.PhaseSF, entryPtr(2, 0), entry(4, 1), 14, RuleWinnerOnly},
		{"winner on side B", match.PhaseGroups, entryPtr(0, 2), entry(1, 3), 5, RuleLoserGoals},
		{"wrong winner", match.PhaseGroups, entryPtr(0, 1), entry(2, 0), 0, RuleWrong},
		{"predicted draw official decisive", match.PhaseFinal, entryPtr(1, 1), entry(2, 1), 0, RuleWrong},
		{"official draw predicted decisive", match.PhaseGroups, entryPtr(2, 1), entry(1, 1), 0, RuleWrong},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			points, rule := ScoreResult(tc.phase, tc.predicted, tc.official)
			if points != tc.wantPoints || rule != tc.wantRule {
				t.Fatalf("ScoreResult = (%d, %q), want (%d, %q)", points, rule, tc.wantPoints, tc.wantRule)
			}
		})
	}
}

func TestBuildUserSummary_OmitsMatchesWithoutOfficialResult(t *testing.T) {
	t.Parallel()

	teams := fullTournamentTeams()
	predictions := prediction.ScoreMap{
		"m-A-0-1": entry(2, 0),
		"m-A-0-2": entry(1, 1),
	}
	official := prediction.ScoreMap{
		"m-A-0-1": entry(2, 0),
		"m-A-0-2": {A: intPtr(1)}, // incomplete, must be ignored
	}

	summary := BuildUserSummary("u1", "User One", teams, predictions, official)

	if len(summary.PerMatch) != 1 {
		t.Fatalf("expected a single scored match, got %d", len(summary.PerMatch))
	}
	detail := summary.PerMatch[0]
	if detail.MatchID != "m-A-0-1" || detail.RuleApplied != RuleExact || detail.ResultPoints != 10 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.IndicationPoints != 0 {
		t.Fatalf("group-stage match must never earn indication points: %+v", detail)
	}
	if summary.Total != 10 || summary.ByPhase[match.PhaseGroups] != 10 {
		t.Fatalf("unexpected totals: total=%d byPhase=%v", summary.Total, summary.ByPhase)
	}
}

func TestBuildUserSummary_FinalIndicationWithWrongScore(t *testing.T) {
	t.Parallel()

	teams := fullTournamentTeams()
	official := completeTournament()

	// Identical bracket picks, but a drawn final prediction: no result
	// points, full indication on both sides.
	predictions := make(prediction.ScoreMap, len(official))
	for k, v := range official {
		predictions[k] = v
	}
	predictions["104"] = entry(1, 1)

	summary := BuildUserSummary("u1", "User One", teams, predictions, official)

	var finalDetail *MatchScoreDetail
	for i := range summary.PerMatch {
		if summary.PerMatch[i].MatchID == "104" {
			finalDetail = &summary.PerMatch[i]
		}
	}
	if finalDetail == nil {
		t.Fatal("final match missing from breakdown")
	}
	if finalDetail.ResultPoints != 0 || finalDetail.RuleApplied != RuleWrong {
		t.Fatalf("drawn prediction against a decisive final must score zero: %+v", finalDetail)
	}
	if finalDetail.IndicationPoints != 60 {
		t.Fatalf("expected 2x30 indication on the final, got %d", finalDetail.IndicationPoints)
	}
	if finalDetail.TotalPoints != 60 {
		t.Fatalf("unexpected final total: %+v", finalDetail)
	}
}

func TestBuildUserSummary_PerfectBracketAggregates(t *testing.T) {
	t.Parallel()

	teams := fullTournamentTeams()
	official := completeTournament()

	summary := BuildUserSummary("u1", "User One", teams, official, official)

	if len(summary.PerMatch) != len(official) {
		t.Fatalf("every officially scored match must appear: got=%d want=%d", len(summary.PerMatch), len(official))
	}
	// 72 group matches at 10 each.
	if got := summary.ByRule[RuleExact]; got < 72*10 {
		t.Fatalf("unexpected exact rule total: %d", got)
	}
	// A fully mirrored bracket earns every indication bonus twice per match:
	// 16*2*3 + 8*2*5 + 4*2*10 + 2*2*10 + 1*2*20 + 1*2*30 = 396.
	if got := summary.ByRule[RuleIndication]; got != 396 {
		t.Fatalf("unexpected indication total: got=%d want=396", got)
	}

	phaseSum := 0
	for _, points := range summary.ByPhase {
		phaseSum += points
	}
	if summary.Total != phaseSum {
		t.Fatalf("grand total must equal the phase sum: total=%d sum=%d", summary.Total, phaseSum)
	}
}

func TestIndicationBonus_CountsEachSideOnce(t *testing.T) {
	t.Parallel()

	teams := team.NewIndex([]team.Team{
		{ID: "BRA", Name: "Brasil", Group: "C"},
		{ID: "ARG", Name: "Argentina", Group: "J"},
		{ID: "GER", Name: "Alemanha", Group: "E"},
	})

	official := bracket.Universe{
		Teams: teams,
		Knockout: []match.Match{
			{ID: "104", Group: match.GroupKnockout, TeamA: "BRA", TeamB: "ARG"},
		},
	}
	oneSide := bracket.Universe{
		Teams: teams,
		Knockout: []match.Match{
			{ID: "104", Group: match.GroupKnockout, TeamA: "BRA", TeamB: "GER"},
		},
	}

	if got := IndicationBonus(match.PhaseFinal, "104", &official, &oneSide); got != 30 {
		t.Fatalf("one agreeing side must earn the bonus once: got=%d want=30", got)
	}
	if got := IndicationBonus(match.PhaseFinal, "104", &official, &official); got != 60 {
		t.Fatalf("two agreeing sides must earn the bonus twice: got=%d want=60", got)
	}
	if got := IndicationBonus(match.PhaseGroups, "104", &official, &official); got != 0 {
		t.Fatalf("group phase never awards indication: got=%d", got)
	}
}
