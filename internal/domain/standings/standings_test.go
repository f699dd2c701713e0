package standings

import (
	"testing"

	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func groupATeams() []team.Team {
	return []team.Team{
		{ID: "MEX", Name: "México", Group: "A"},
		{ID: "RSA", Name: "África do Sul", Group: "A"},
		{ID: "KOR", Name: "Coreia do Sul", Group: "A"},
		{ID: "UEFA_D", Name: "Repescagem UEFA D", Group: "A"},
	}
}

func TestCalculate_SingleScoredMatch(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "m-A-0-1", Group: "A", TeamA: "MEX", TeamB: "RSA", ScoreA: intPtr(2), ScoreB: intPtr(0)},
		{ID: "m-A-0-2", Group: "A", TeamA: "MEX", TeamB: "KOR"},
	}

	table := Calculate(groupATeams(), matches)
	if len(table) != 4 {
		t.Fatalf("unexpected table length: got=%d want=4", len(table))
	}

	winner := table[0]
	if winner.TeamID != "MEX" {
		t.Fatalf("unexpected leader: got=%s want=MEX", winner.TeamID)
	}
	if winner.Played != 1 || winner.Won != 1 || winner.Points != 3 || winner.GoalsDifference != 2 {
		t.Fatalf("unexpected winner row: %+v", winner)
	}

	loser := table[3]
	if loser.TeamID != "RSA" {
		t.Fatalf("unexpected last place: got=%s want=RSA", loser.TeamID)
	}
	if loser.Played != 1 || loser.Lost != 1 || loser.Points != 0 || loser.GoalsDifference != -2 {
		t.Fatalf("unexpected loser row: %+v", loser)
	}

	for _, row := range table[1:3] {
		if row.Played != 0 || row.Points != 0 || row.GoalsFor != 0 || row.GoalsAgainst != 0 {
			t.Fatalf("expected untouched row for %s, got %+v", row.TeamID, row)
		}
	}
}

func TestCalculate_NullScoresNeverCount(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "m-A-0-1", Group: "A", TeamA: "MEX", TeamB: "RSA"},
		{ID: "m-A-2-3", Group: "A", TeamA: "KOR", TeamB: "UEFA_D", ScoreA: intPtr(1)},
	}

	for _, row := range Calculate(groupATeams(), matches) {
		if row.Played != 0 {
			t.Fatalf("match with a missing score affected standings: %+v", row)
		}
	}
}

func TestCalculate_GoalDifferenceInvariant(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "m-A-0-1", Group: "A", TeamA: "MEX", TeamB: "RSA", ScoreA: intPtr(3), ScoreB: intPtr(2)},
		{ID: "m-A-0-2", Group: "A", TeamA: "MEX", TeamB: "KOR", ScoreA: intPtr(1), ScoreB: intPtr(1)},
		{ID: "m-A-1-3", Group: "A", TeamA: "RSA", TeamB: "UEFA_D", ScoreA: intPtr(0), ScoreB: intPtr(4)},
	}

	for _, row := range Calculate(groupATeams(), matches) {
		if row.GoalsDifference != row.GoalsFor-row.GoalsAgainst {
			t.Fatalf("goal difference invariant broken: %+v", row)
		}
	}
}

func TestCalculate_DrawAwardsOnePointEach(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "m-A-0-1", Group: "A", TeamA: "MEX", TeamB: "RSA", ScoreA: intPtr(2), ScoreB: intPtr(2)},
	}

	table := Calculate(groupATeams(), matches)
	for _, row := range table {
		switch row.TeamID {
		case "MEX", "RSA":
			if row.Drawn != 1 || row.Points != 1 {
				t.Fatalf("unexpected draw row: %+v", row)
			}
		}
	}
}

func TestCalculate_TieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	// Identical (points, diff, goals-for) triples must keep seed order;
	// no head-to-head or fair-play tie-break exists in this format.
	teams := groupATeams()
	matches := []match.Match{
		{ID: "m-A-0-3", Group: "A", TeamA: "MEX", TeamB: "UEFA_D", ScoreA: intPtr(1), ScoreB: intPtr(0)},
		{ID: "m-A-1-3", Group: "A", TeamA: "RSA", TeamB: "UEFA_D", ScoreA: intPtr(1), ScoreB: intPtr(0)},
	}

	table := Calculate(teams, matches)
	if table[0].TeamID != "MEX" || table[1].TeamID != "RSA" {
		t.Fatalf("stable ordering broken: got %s,%s", table[0].TeamID, table[1].TeamID)
	}
}

func TestCalculate_OrderingTriple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		matches []match.Match
		want    []string
	}{
		{
			name: "points beat goal difference",
			matches: []match.Match{
				{ID: "m-A-0-1", Group: "A", TeamA: "MEX", TeamB: "RSA", ScoreA: intPtr(1), ScoreB: intPtr(0)},
				{ID: "m-A-1-2", Group: "A", TeamA: "RSA", TeamB: "KOR", ScoreA: intPtr(5), ScoreB: intPtr(5)},
			},
			want: []string{"MEX", "KOR", "RSA", "UEFA_D"},
		},
		{
			name: "goal difference breaks equal points",
			matches: []match.Match{
				{ID: "m-A-0-3", Group: "A", TeamA: "MEX", TeamB: "UEFA_D", ScoreA: intPtr(1), ScoreB: intPtr(0)},
				{ID: "m-A-1-3", Group: "A", TeamA: "RSA", TeamB: "UEFA_D", ScoreA: intPtr(3), ScoreB: intPtr(0)},
			},
			want: []string{"RSA", "MEX", "KOR", "UEFA_D"},
		},
		{
			name: "goals for breaks equal difference",
			matches: []match.Match{
				{ID: "m-A-0-3", Group: "A", TeamA: "MEX", TeamB: "UEFA_D", ScoreA: intPtr(2), ScoreB: intPtr(1)},
				{ID: "m-A-1-2", Group: "A", TeamA: "RSA", TeamB: "KOR", ScoreA: intPtr(4), ScoreB: intPtr(3)},
			},
			want: []string{"RSA", "MEX", "KOR", "UEFA_D"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			table := Calculate(groupATeams(), tc.matches)
			for i, id := range tc.want {
				if table[i].TeamID != id {
					t.Fatalf("position %d: got=%s want=%s (table=%+v)", i, table[i].TeamID, id, table)
				}
			}
		})
	}
}
