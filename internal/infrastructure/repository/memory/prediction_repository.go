package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
)

// PredictionRepository keeps one row per (user, match), replacing on upsert
// like the unique-key constraint in the postgres store.
type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]prediction.Prediction
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{
		items: make(map[string]map[string]prediction.Prediction),
	}
}

func (r *PredictionRepository) ListByUser(_ context.Context, userID string) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.items[userID]
	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })

	return out, nil
}

func (r *PredictionRepository) ListUserIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.items))
	for userID, rows := range r.items {
		if len(rows) == 0 {
			continue
		}
		out = append(out, userID)
	}
	sort.Strings(out)

	return out, nil
}

func (r *PredictionRepository) Upsert(_ context.Context, row prediction.Prediction) error {
	if err := row.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[row.UserID] == nil {
		r.items[row.UserID] = make(map[string]prediction.Prediction)
	}
	r.items[row.UserID][row.MatchID] = row

	return nil
}
