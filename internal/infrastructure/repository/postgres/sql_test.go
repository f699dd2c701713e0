package postgres

import (
	"strings"
	"testing"

	qb "github.com/gpbuil/fifa2026-new/internal/platform/querybuilder"
)

func TestPredictionBaseSelectBuilder(t *testing.T) {
	query, args, err := predictionBaseSelectBuilder().
		Where(qb.Eq("user_id", "u1")).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	if !strings.HasPrefix(query, "SELECT id, public_id, user_id, match_id, score_a, score_b, created_at, updated_at FROM predictions") {
		t.Fatalf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "user_id = $1") {
		t.Fatalf("expected positional parameter, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY match_id") {
		t.Fatalf("expected order by, got: %s", query)
	}
	if len(args) != 1 || args[0] != "u1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestPredictionUpsertSQL(t *testing.T) {
	model := predictionInsertModel{
		PublicID: "p1",
		UserID:   "u1",
		MatchID:  "73",
		ScoreA:   2,
		ScoreB:   1,
	}

	query, args, err := qb.InsertModel(
		predictionsTable,
		model,
		"ON CONFLICT (user_id, match_id) DO UPDATE SET score_a = EXCLUDED.score_a, score_b = EXCLUDED.score_b, updated_at = NOW()",
	)
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}

	if !strings.HasPrefix(query, "INSERT INTO predictions") {
		t.Fatalf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "ON CONFLICT (user_id, match_id)") {
		t.Fatalf("expected conflict clause, got: %s", query)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %v", args)
	}
}
