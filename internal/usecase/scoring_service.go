package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/scoring"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

// ScoringService computes per-user score summaries against the official
// result map. Summaries are cached until predictions or results change.
type ScoringService struct {
	data      tournamentData
	directory user.Directory
}

func NewScoringService(teams team.Repository, predictions prediction.Repository, directory user.Directory, store *cache.Store) *ScoringService {
	return &ScoringService{
		data:      tournamentData{teams: teams, predictions: predictions, cache: store},
		directory: directory,
	}
}

func (s *ScoringService) Summary(ctx context.Context, userID string) (scoring.UserScoreSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoringService.Summary")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return scoring.UserScoreSummary{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if userID == prediction.OfficialUserID {
		return scoring.UserScoreSummary{}, fmt.Errorf("%w: reserved user id", ErrInvalidInput)
	}

	value, err := s.data.cache.GetOrLoad(ctx, scoreSummaryCacheKey(userID), func(ctx context.Context) (any, error) {
		return s.buildSummary(ctx, userID)
	})
	if err != nil {
		return scoring.UserScoreSummary{}, err
	}

	summary, ok := value.(scoring.UserScoreSummary)
	if !ok {
		return scoring.UserScoreSummary{}, fmt.Errorf("unexpected cached summary type %T", value)
	}

	return summary, nil
}

func (s *ScoringService) buildSummary(ctx context.Context, userID string) (scoring.UserScoreSummary, error) {
	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return scoring.UserScoreSummary{}, err
	}
	official, err := s.data.officialScores(ctx)
	if err != nil {
		return scoring.UserScoreSummary{}, err
	}
	predicted, err := s.data.userScores(ctx, userID)
	if err != nil {
		return scoring.UserScoreSummary{}, err
	}

	name := userID
	if profile, found, err := s.directory.GetByID(ctx, userID); err != nil {
		return scoring.UserScoreSummary{}, fmt.Errorf("resolve user %s: %w", userID, err)
	} else if found && profile.Name != "" {
		name = profile.Name
	}

	return scoring.BuildUserSummary(userID, name, idx, predicted, official), nil
}
