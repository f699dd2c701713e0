package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
	"github.com/gpbuil/fifa2026-new/internal/platform/id"
)

// PredictionInput is one match prediction as submitted by a user.
type PredictionInput struct {
	MatchID string
	ScoreA  int
	ScoreB  int
}

// PredictionService stores and serves a user's predictions.
type PredictionService struct {
	data  tournamentData
	idGen id.Generator
	now   func() time.Time
}

func NewPredictionService(teams team.Repository, predictions prediction.Repository, store *cache.Store, idGen id.Generator) *PredictionService {
	return &PredictionService{
		data:  tournamentData{teams: teams, predictions: predictions, cache: store},
		idGen: idGen,
		now:   time.Now,
	}
}

// ListForUser returns the user's latest prediction per match.
func (s *PredictionService) ListForUser(ctx context.Context, userID string) (prediction.ScoreMap, error) {
	ctx, span := startUsecaseSpan(ctx, "PredictionService.ListForUser")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	return s.data.userScores(ctx, userID)
}

// Upsert stores one prediction for the user, replacing any earlier pick for
// the same match.
func (s *PredictionService) Upsert(ctx context.Context, userID string, input PredictionInput) error {
	ctx, span := startUsecaseSpan(ctx, "PredictionService.Upsert")
	defer span.End()

	return s.upsertMany(ctx, userID, []PredictionInput{input})
}

// UpsertMany stores a batch of predictions atomically from the caller's
// point of view: everything is validated before the first write.
func (s *PredictionService) UpsertMany(ctx context.Context, userID string, inputs []PredictionInput) error {
	ctx, span := startUsecaseSpan(ctx, "PredictionService.UpsertMany")
	defer span.End()

	return s.upsertMany(ctx, userID, inputs)
}

func (s *PredictionService) upsertMany(ctx context.Context, userID string, inputs []PredictionInput) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if userID == prediction.OfficialUserID {
		return fmt.Errorf("%w: reserved user id", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no predictions given", ErrInvalidInput)
	}

	known, err := s.knownMatchIDs(ctx)
	if err != nil {
		return err
	}

	rows := make([]prediction.Prediction, 0, len(inputs))
	for _, input := range inputs {
		matchID := strings.TrimSpace(input.MatchID)
		if _, ok := known[matchID]; !ok {
			return fmt.Errorf("%w: unknown match %q", ErrInvalidInput, input.MatchID)
		}

		rowID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate prediction id: %w", err)
		}

		row := prediction.Prediction{
			ID:        rowID,
			UserID:    userID,
			MatchID:   matchID,
			ScoreA:    input.ScoreA,
			ScoreB:    input.ScoreB,
			UpdatedAt: s.now(),
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rows = append(rows, row)
	}

	for _, row := range rows {
		if err := s.data.predictions.Upsert(ctx, row); err != nil {
			return fmt.Errorf("store prediction for match %s: %w", row.MatchID, err)
		}
	}

	s.data.cache.Delete(ctx, scoreSummaryCacheKey(userID))
	s.data.cache.Delete(ctx, cacheKeyRanking)

	return nil
}

// knownMatchIDs is the set of every schedulable match: 72 group fixtures
// plus the 32 knockout fixtures.
func (s *PredictionService) knownMatchIDs(ctx context.Context) (map[string]struct{}, error) {
	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, 104)
	for _, m := range bracket.GroupStageMatches(idx, nil) {
		out[m.ID] = struct{}{}
	}
	for n := match.FirstKnockoutID; n <= match.LastKnockoutID; n++ {
		out[strconv.Itoa(n)] = struct{}{}
	}

	return out, nil
}
