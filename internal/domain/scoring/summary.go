package scoring

import (
	"sort"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

// Rule labels surfaced to users, grouped by how the points were earned.
const (
	RuleNoPrediction = "Sem palpite"
	RuleExact        = "Resultado exato"
	RuleDrawDiff     = "Empate diferente"
	RuleWinnerGoals  = "Vencedor + gols do vencedor"
	RuleLoserGoals   = "Vencedor + gols do perdedor"
	RuleWinnerOnly   = "Apenas vencedor"
	RuleWrong        = "Errou"
	RuleIndication   = "Indicação correta / por país"
)

// MatchScoreDetail is the per-match breakdown line of a summary.
type MatchScoreDetail struct {
	MatchID          string
	Phase            match.Phase
	PhaseLabel       string
	Predicted        *prediction.ScoreEntry
	Official         prediction.ScoreEntry
	RuleApplied      string
	ResultPoints     int
	IndicationPoints int
	TotalPoints      int
}

// UserScoreSummary aggregates one user's points against the official map.
type UserScoreSummary struct {
	UserID   string
	Name     string
	Total    int
	ByPhase  map[match.Phase]int
	ByRule   map[string]int
	PerMatch []MatchScoreDetail
}

// ScoreResult applies the phase's result rules to one prediction against one
// official score. It assumes the official entry is complete.
func ScoreResult(phase match.Phase, predicted *prediction.ScoreEntry, official prediction.ScoreEntry) (int, string) {
	if predicted == nil || !predicted.Complete() {
		return 0, RuleNoPrediction
	}
	table := PointsForPhase(phase)
	pa, pb := *predicted.A, *predicted.B
	oa, ob := *official.A, *official.B

	if pa == oa && pb == ob {
		return table.Exact, RuleExact
	}

	officialDraw := oa == ob
	predictedDraw := pa == pb

	if officialDraw && predictedDraw {
		if table.HasDrawDiff {
			return table.DrawDiff, RuleDrawDiff
		}
		// Later knockout phases never define a draw rule; an officially
		// recorded draw there scores nothing here on purpose.
		return 0, RuleDrawDiff
	}

	if !officialDraw && !predictedDraw {
		officialAWins := oa > ob
		predictedAWins := pa > pb
		if officialAWins == predictedAWins {
			officialWinnerGoals, officialLoserGoals := oa, ob
			if !officialAWins {
				officialWinnerGoals, officialLoserGoals = ob, oa
			}
			predictedWinnerGoals, predictedLoserGoals := pa, pb
			if !predictedAWins {
				predictedWinnerGoals, predictedLoserGoals = pb, pa
			}
			if predictedWinnerGoals == officialWinnerGoals {
				return table.WinnerGoals, RuleWinnerGoals
			}
			if predictedLoserGoals == officialLoserGoals {
				return table.LoserGoals, RuleLoserGoals
			}
			return table.WinnerOnly, RuleWinnerOnly
		}
	}

	return 0, RuleWrong
}

// IndicationBonus compares the resolved slots of one knockout match across
// the official and the user's universes. Each side whose resolved team IDs
// agree earns the phase value once, so a match can award it zero, once, or
// twice. Group-stage matches never qualify.
func IndicationBonus(phase match.Phase, matchID string, official, predicted *bracket.Universe) int {
	perSide := IndicationForPhase(phase)
	if perSide <= 0 {
		return 0
	}

	officialMatch, okO := official.KnockoutMatchByID(matchID)
	userMatch, okU := predicted.KnockoutMatchByID(matchID)
	if !okO || !okU {
		return 0
	}

	bonus := 0
	if sideAgrees(official.Resolve(officialMatch.TeamA), predicted.Resolve(userMatch.TeamA)) {
		bonus += perSide
	}
	if sideAgrees(official.Resolve(officialMatch.TeamB), predicted.Resolve(userMatch.TeamB)) {
		bonus += perSide
	}

	return bonus
}

func sideAgrees(official, predicted bracket.Slot) bool {
	return official.Resolved() && predicted.Resolved() && official.Team.ID == predicted.Team.ID
}

// BuildUserSummary scores one user's full prediction map against the shared
// official map. Matches without a complete official score are omitted from
// the output entirely, not scored as zero. The per-match breakdown is sorted
// by match ID for stable presentation.
func BuildUserSummary(userID, name string, teams team.Index, predictions, official prediction.ScoreMap) UserScoreSummary {
	officialUniverse := bracket.NewUniverse(teams, official)
	userUniverse := bracket.NewUniverse(teams, predictions)

	summary := UserScoreSummary{
		UserID:  userID,
		Name:    name,
		ByPhase: make(map[match.Phase]int, len(match.Phases())),
		ByRule:  make(map[string]int),
	}
	for _, phase := range match.Phases() {
		summary.ByPhase[phase] = 0
	}

	for matchID, officialScore := range official {
		if !officialScore.Complete() {
			continue
		}
		phase := match.PhaseForMatch(matchID)

		var predicted *prediction.ScoreEntry
		if entry, ok := predictions.Get(matchID); ok {
			e := entry
			predicted = &e
		}

		resultPts, rule := ScoreResult(phase, predicted, officialScore)

		indicationPts := 0
		if phase != match.PhaseGroups {
			indicationPts = IndicationBonus(phase, matchID, &officialUniverse, &userUniverse)
		}

		total := resultPts + indicationPts
		summary.ByPhase[phase] += total
		summary.ByRule[rule] += resultPts
		if indicationPts > 0 {
			summary.ByRule[RuleIndication] += indicationPts
		}

		summary.PerMatch = append(summary.PerMatch, MatchScoreDetail{
			MatchID:          matchID,
			Phase:            phase,
			PhaseLabel:       phase.Label(),
			Predicted:        predicted,
			Official:         officialScore,
			RuleApplied:      rule,
			ResultPoints:     resultPts,
			IndicationPoints: indicationPts,
			TotalPoints:      total,
		})
	}

	for _, points := range summary.ByPhase {
		summary.Total += points
	}

	sort.Slice(summary.PerMatch, func(i, j int) bool {
		return summary.PerMatch[i].MatchID < summary.PerMatch[j].MatchID
	})

	return summary
}
