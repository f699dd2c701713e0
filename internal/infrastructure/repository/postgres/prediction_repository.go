package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	qb "github.com/gpbuil/fifa2026-new/internal/platform/querybuilder"
)

const predictionsTable = "predictions"

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func predictionBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"public_id",
		"user_id",
		"match_id",
		"score_a",
		"score_b",
		"created_at",
		"updated_at",
	).From(predictionsTable)
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	query, args, err := predictionBaseSelectBuilder().
		Where(qb.Eq("user_id", userID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func (r *PredictionRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("user_id").
		From(predictionsTable).
		GroupBy("user_id").
		OrderBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user ids query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list prediction user ids: %w", err)
	}
	return out, nil
}

// Upsert relies on the (user_id, match_id) unique constraint so a repeated
// pick overwrites the stored score instead of stacking rows.
func (r *PredictionRepository) Upsert(ctx context.Context, row prediction.Prediction) error {
	if err := row.Validate(); err != nil {
		return err
	}

	model := predictionInsertModel{
		PublicID: row.ID,
		UserID:   row.UserID,
		MatchID:  row.MatchID,
		ScoreA:   row.ScoreA,
		ScoreB:   row.ScoreB,
	}

	query, args, err := qb.InsertModel(
		predictionsTable,
		model,
		"ON CONFLICT (user_id, match_id) DO UPDATE SET score_a = EXCLUDED.score_a, score_b = EXCLUDED.score_b, updated_at = NOW()",
	)
	if err != nil {
		return fmt.Errorf("build upsert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:        row.PublicID,
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		ScoreA:    row.ScoreA,
		ScoreB:    row.ScoreB,
		UpdatedAt: row.UpdatedAt,
	}
}
