package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
	"github.com/gpbuil/fifa2026-new/internal/platform/id"
)

// ResultsService records official match results. Results are prediction
// rows stored under the reserved official user, so every derived view
// (standings, brackets, scores) reads them the same way it reads picks.
type ResultsService struct {
	data  tournamentData
	idGen id.Generator
	now   func() time.Time
}

func NewResultsService(teams team.Repository, predictions prediction.Repository, store *cache.Store, idGen id.Generator) *ResultsService {
	return &ResultsService{
		data:  tournamentData{teams: teams, predictions: predictions, cache: store},
		idGen: idGen,
		now:   time.Now,
	}
}

// SetResult records the official score for one match and drops every cache
// the result can influence.
func (s *ResultsService) SetResult(ctx context.Context, matchID string, scoreA, scoreB int) error {
	ctx, span := startUsecaseSpan(ctx, "ResultsService.SetResult")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if scoreA < 0 || scoreB < 0 {
		return fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return err
	}
	if !knownMatchID(idx, matchID) {
		return fmt.Errorf("%w: unknown match %q", ErrNotFound, matchID)
	}

	rowID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate result id: %w", err)
	}

	row := prediction.Prediction{
		ID:        rowID,
		UserID:    prediction.OfficialUserID,
		MatchID:   matchID,
		ScoreA:    scoreA,
		ScoreB:    scoreB,
		UpdatedAt: s.now(),
	}
	if err := s.data.predictions.Upsert(ctx, row); err != nil {
		return fmt.Errorf("store result for match %s: %w", matchID, err)
	}

	s.data.cache.Delete(ctx, cacheKeyOfficialScores)
	s.data.cache.Delete(ctx, cacheKeyRanking)
	s.data.cache.DeletePrefix(ctx, cacheKeyScorePrefix)

	return nil
}

// OfficialResults returns the complete official score map.
func (s *ResultsService) OfficialResults(ctx context.Context) (prediction.ScoreMap, error) {
	ctx, span := startUsecaseSpan(ctx, "ResultsService.OfficialResults")
	defer span.End()

	return s.data.officialScores(ctx)
}

func knownMatchID(idx team.Index, matchID string) bool {
	if match.IsKnockoutID(matchID) {
		return true
	}
	for _, m := range bracket.GroupStageMatches(idx, nil) {
		if m.ID == matchID {
			return true
		}
	}
	return false
}
