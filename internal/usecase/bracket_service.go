package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

// BracketMatch is one knockout fixture with both slots resolved as far as
// the underlying results allow.
type BracketMatch struct {
	ID     string
	Phase  match.Phase
	SlotA  bracket.Slot
	SlotB  bracket.Slot
	ScoreA *int
	ScoreB *int
}

// BracketService materializes the knockout bracket for the official results
// or for a single user's predicted universe.
type BracketService struct {
	data tournamentData
}

func NewBracketService(teams team.Repository, predictions prediction.Repository, store *cache.Store) *BracketService {
	return &BracketService{
		data: tournamentData{teams: teams, predictions: predictions, cache: store},
	}
}

// OfficialBracket resolves the bracket from admin-entered results.
func (s *BracketService) OfficialBracket(ctx context.Context) ([]BracketMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "BracketService.OfficialBracket")
	defer span.End()

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	official, err := s.data.officialScores(ctx)
	if err != nil {
		return nil, err
	}

	return resolveBracket(idx, official), nil
}

// UserBracket resolves the bracket a user's own predictions imply.
func (s *BracketService) UserBracket(ctx context.Context, userID string) ([]BracketMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "BracketService.UserBracket")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.data.userScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	return resolveBracket(idx, scores), nil
}

func resolveBracket(idx team.Index, scores prediction.ScoreMap) []BracketMatch {
	universe := bracket.NewUniverse(idx, scores)

	out := make([]BracketMatch, 0, len(universe.Knockout))
	for _, m := range universe.Knockout {
		out = append(out, BracketMatch{
			ID:     m.ID,
			Phase:  match.PhaseForMatch(m.ID),
			SlotA:  universe.Resolve(m.TeamA),
			SlotB:  universe.Resolve(m.TeamB),
			ScoreA: m.ScoreA,
			ScoreB: m.ScoreB,
		})
	}

	return out
}
