package usecase

import (
	"context"
	"fmt"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

const (
	cacheKeyTeamIndex      = "teams:index"
	cacheKeyOfficialScores = "official:scores"
	cacheKeyRanking        = "ranking:list"
	cacheKeyScorePrefix    = "scores:summary:"
)

// tournamentData gives services shared, cached access to the team list and
// the official result map. All derived views start from these two loads.
type tournamentData struct {
	teams       team.Repository
	predictions prediction.Repository
	cache       *cache.Store
}

func (d tournamentData) teamIndex(ctx context.Context) (team.Index, error) {
	value, err := d.cache.GetOrLoad(ctx, cacheKeyTeamIndex, func(ctx context.Context) (any, error) {
		all, err := d.teams.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		return team.NewIndex(all), nil
	})
	if err != nil {
		return team.Index{}, err
	}

	idx, ok := value.(team.Index)
	if !ok {
		return team.Index{}, fmt.Errorf("unexpected cached team index type %T", value)
	}

	return idx, nil
}

func (d tournamentData) officialScores(ctx context.Context) (prediction.ScoreMap, error) {
	value, err := d.cache.GetOrLoad(ctx, cacheKeyOfficialScores, func(ctx context.Context) (any, error) {
		rows, err := d.predictions.ListByUser(ctx, prediction.OfficialUserID)
		if err != nil {
			return nil, fmt.Errorf("list official results: %w", err)
		}
		return prediction.ToScoreMap(rows), nil
	})
	if err != nil {
		return nil, err
	}

	scores, ok := value.(prediction.ScoreMap)
	if !ok {
		return nil, fmt.Errorf("unexpected cached score map type %T", value)
	}

	return scores, nil
}

func (d tournamentData) userScores(ctx context.Context, userID string) (prediction.ScoreMap, error) {
	rows, err := d.predictions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions for user %s: %w", userID, err)
	}

	return prediction.ToScoreMap(rows), nil
}

func scoreSummaryCacheKey(userID string) string {
	return cacheKeyScorePrefix + userID
}
