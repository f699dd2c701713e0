package postgres

import "time"

type predictionTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	UserID    string    `db:"user_id"`
	MatchID   string    `db:"match_id"`
	ScoreA    int       `db:"score_a"`
	ScoreB    int       `db:"score_b"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type predictionInsertModel struct {
	PublicID string `db:"public_id"`
	UserID   string `db:"user_id"`
	MatchID  string `db:"match_id"`
	ScoreA   int    `db:"score_a"`
	ScoreB   int    `db:"score_b"`
}
