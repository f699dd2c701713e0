package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/domain/user"
)

type stubTeamRepository struct {
	teams     []team.Team
	listCalls atomic.Int32
}

func (s *stubTeamRepository) ListAll(context.Context) ([]team.Team, error) {
	s.listCalls.Add(1)
	return s.teams, nil
}

type stubPredictionRepository struct {
	mu        sync.Mutex
	rows      map[string][]prediction.Prediction
	listCalls atomic.Int32
	failList  error
}

func newStubPredictionRepository() *stubPredictionRepository {
	return &stubPredictionRepository{rows: make(map[string][]prediction.Prediction)}
}

func (s *stubPredictionRepository) ListByUser(_ context.Context, userID string) ([]prediction.Prediction, error) {
	s.listCalls.Add(1)
	if s.failList != nil {
		return nil, s.failList
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]prediction.Prediction, len(s.rows[userID]))
	copy(out, s.rows[userID])
	return out, nil
}

func (s *stubPredictionRepository) ListUserIDs(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.rows))
	for userID := range s.rows {
		out = append(out, userID)
	}
	return out, nil
}

func (s *stubPredictionRepository) Upsert(_ context.Context, row prediction.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[row.UserID][:0]
	for _, existing := range s.rows[row.UserID] {
		if existing.MatchID != row.MatchID {
			kept = append(kept, existing)
		}
	}
	s.rows[row.UserID] = append(kept, row)
	return nil
}

func (s *stubPredictionRepository) seed(userID, matchID string, a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[userID] = append(s.rows[userID], prediction.Prediction{
		ID:        fmt.Sprintf("%s-%s", userID, matchID),
		UserID:    userID,
		MatchID:   matchID,
		ScoreA:    a,
		ScoreB:    b,
		UpdatedAt: time.Now(),
	})
}

type stubDirectory struct {
	profiles map[string]user.Profile
}

func (s *stubDirectory) GetByID(_ context.Context, id string) (user.Profile, bool, error) {
	profile, ok := s.profiles[id]
	return profile, ok, nil
}

func (s *stubDirectory) ListAll(context.Context) ([]user.Profile, error) {
	out := make([]user.Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		out = append(out, profile)
	}
	return out, nil
}

type sequenceIDGenerator struct {
	n atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("id-%d", g.n.Add(1)), nil
}

// fourGroupTeams covers groups A and B with four teams each, enough for
// full group tables without the complete 48-team seed.
func fourGroupTeams() []team.Team {
	var teams []team.Team
	for _, group := range []string{"A", "B"} {
		for i := 1; i <= 4; i++ {
			id := fmt.Sprintf("%s%d", group, i)
			teams = append(teams, team.Team{ID: id, Name: "Team " + id, Group: group})
		}
	}
	return teams
}
