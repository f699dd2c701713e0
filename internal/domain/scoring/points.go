package scoring

import "github.com/gpbuil/fifa2026-new/internal/domain/match"

// ResultPoints is the point table for one phase. A zero DrawDiff with
// HasDrawDiff false means the phase awards nothing for a non-exact draw:
// only the group stage and the round of 32 define that rule.
type ResultPoints struct {
	Exact       int
	WinnerGoals int
	LoserGoals  int
	WinnerOnly  int
	DrawDiff    int
	HasDrawDiff bool
}

// Fixed per-phase tables; values grow with tournament importance.
var resultPoints = map[match.Phase]ResultPoints{
	match.PhaseGroups: {Exact: 10, WinnerGoals: 5, LoserGoals: 5, WinnerOnly: 3, DrawDiff: 4, HasDrawDiff: true},
	match.PhaseR32:    {Exact: 15, WinnerGoals: 10, LoserGoals: 7, WinnerOnly: 5, DrawDiff: 8, HasDrawDiff: true},
	match.PhaseR16:    {Exact: 20, WinnerGoals: 13, LoserGoals: 10, WinnerOnly: 8},
	match.PhaseQF:     {Exact: 25, WinnerGoals: 16, LoserGoals: 13, WinnerOnly: 11},
	match.PhaseSF:     {Exact: 30, WinnerGoals: 19, LoserGoals: 16, WinnerOnly: 14},
	match.PhaseThird:  {Exact: 35, WinnerGoals: 22, LoserGoals: 19, WinnerOnly: 17},
	match.PhaseFinal:  {Exact: 45, WinnerGoals: 25, LoserGoals: 22, WinnerOnly: 20},
}

// indicationPoints rewards naming the right team in a knockout slot,
// independent of predicting the score. The group stage never awards it.
var indicationPoints = map[match.Phase]int{
	match.PhaseR32:   3,
	match.PhaseR16:   5,
	match.PhaseQF:    10,
	match.PhaseSF:    10,
	match.PhaseThird: 20,
	match.PhaseFinal: 30,
}

// PointsForPhase returns the result-rule table for a phase.
func PointsForPhase(phase match.Phase) ResultPoints {
	return resultPoints[phase]
}

// IndicationForPhase returns the per-side indication bonus, zero for phases
// that never award it.
func IndicationForPhase(phase match.Phase) int {
	return indicationPoints[phase]
}
