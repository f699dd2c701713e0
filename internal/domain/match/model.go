package match

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupKnockout is the group sentinel carried by every knockout match.
const GroupKnockout = "KO"

// Match is one fixture. TeamA/TeamB hold concrete team IDs for group matches
// and may hold symbolic slot tokens ("1A", "W74", "3rd-2-C/D/F/G/H") for
// knockout matches whose participants are not decided yet. A nil score means
// not played (official view) or not predicted (user view).
type Match struct {
	ID     string
	Group  string
	TeamA  string
	TeamB  string
	ScoreA *int
	ScoreB *int
}

// Scored reports whether both scores are present.
func (m Match) Scored() bool {
	return m.ScoreA != nil && m.ScoreB != nil
}

// Phase identifies which stage of the tournament a match belongs to. It
// drives the point table used by the scoring engine.
type Phase string

const (
	PhaseGroups Phase = "groups"
	PhaseR32    Phase = "r32"
	PhaseR16    Phase = "r16"
	PhaseQF     Phase = "qf"
	PhaseSF     Phase = "sf"
	PhaseThird  Phase = "third"
	PhaseFinal  Phase = "final"
)

// Phases returns every phase in tournament order.
func Phases() []Phase {
	return []Phase{PhaseGroups, PhaseR32, PhaseR16, PhaseQF, PhaseSF, PhaseThird, PhaseFinal}
}

// Labels shown to users, keyed by phase.
var phaseLabels = map[Phase]string{
	PhaseGroups: "Fase de grupos",
	PhaseR32:    "Rodada 32",
	PhaseR16:    "Rodada 16",
	PhaseQF:     "Quartas",
	PhaseSF:     "Semifinais",
	PhaseThird:  "3º e 4º lugar",
	PhaseFinal:  "Final",
}

func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return string(p)
}

// Knockout match IDs occupy the fixed numeric range 73..104.
const (
	FirstKnockoutID = 73
	LastKnockoutID  = 104
)

// PhaseForMatch derives the phase from the match-ID scheme: "m-" prefixed IDs
// are group matches, numeric IDs map onto the knockout ranges.
func PhaseForMatch(matchID string) Phase {
	if strings.HasPrefix(matchID, "m-") {
		return PhaseGroups
	}

	id, err := strconv.Atoi(matchID)
	if err != nil {
		return PhaseGroups
	}
	switch {
	case id >= 73 && id <= 88:
		return PhaseR32
	case id >= 89 && id <= 96:
		return PhaseR16
	case id >= 97 && id <= 100:
		return PhaseQF
	case id >= 101 && id <= 102:
		return PhaseSF
	case id == 103:
		return PhaseThird
	default:
		return PhaseFinal
	}
}

// GroupMatchID builds the deterministic ID for the pairing of the i-th and
// j-th teams (seed order) of a group.
func GroupMatchID(group string, i, j int) string {
	return fmt.Sprintf("m-%s-%d-%d", group, i, j)
}

// IsKnockoutID reports whether the ID falls in the knockout numeric range.
func IsKnockoutID(matchID string) bool {
	id, err := strconv.Atoi(matchID)
	if err != nil {
		return false
	}
	return id >= FirstKnockoutID && id <= LastKnockoutID
}
