package prediction

import (
	"fmt"
	"time"
)

// OfficialUserID is the reserved user the admin writes official results
// under. Regular accounts can never take this ID.
const OfficialUserID = "__official__"

// ScoreEntry is one submitted score pair. Nil means the side was not filled
// in; both sides must be present for the entry to count anywhere.
type ScoreEntry struct {
	A *int
	B *int
}

func (e ScoreEntry) Complete() bool {
	return e.A != nil && e.B != nil
}

// ScoreMap is a user's sparse match-ID -> score mapping. Absence of a key
// means no score was submitted for that match.
type ScoreMap map[string]ScoreEntry

// Get mirrors map access but tolerates a nil map.
func (m ScoreMap) Get(matchID string) (ScoreEntry, bool) {
	if m == nil {
		return ScoreEntry{}, false
	}
	entry, ok := m[matchID]
	return entry, ok
}

// Prediction is one stored row: a user's score pair for a single match.
type Prediction struct {
	ID        string
	UserID    string
	MatchID   string
	ScoreA    int
	ScoreB    int
	UpdatedAt time.Time
}

func (p Prediction) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("prediction user id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if p.ScoreA < 0 || p.ScoreB < 0 {
		return fmt.Errorf("prediction scores must be non-negative")
	}

	return nil
}

// Entry converts the stored row to its score-map form.
func (p Prediction) Entry() ScoreEntry {
	a, b := p.ScoreA, p.ScoreB
	return ScoreEntry{A: &a, B: &b}
}

// ToScoreMap folds rows into a sparse map, keeping the latest row per match.
func ToScoreMap(rows []Prediction) ScoreMap {
	out := make(ScoreMap, len(rows))
	latest := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		if seen, ok := latest[row.MatchID]; ok && seen.After(row.UpdatedAt) {
			continue
		}
		latest[row.MatchID] = row.UpdatedAt
		out[row.MatchID] = row.Entry()
	}

	return out
}
