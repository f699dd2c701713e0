package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/scoring"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

const (
	defaultRankingConcurrency = 8
	defaultRecomputeWorkers   = 4
)

// RankingEntry is one row of the pool leaderboard.
type RankingEntry struct {
	Position int
	UserID   string
	Name     string
	Total    int
	ByPhase  map[string]int
}

// RecomputeResult reports an admin-triggered cache rebuild.
type RecomputeResult struct {
	Users  int
	Failed int
}

// RankingService builds the leaderboard from every participant's summary.
type RankingService struct {
	scoring     *ScoringService
	predictions prediction.Repository
	store       *cache.Store
	concurrency int
}

func NewRankingService(scoringSvc *ScoringService, predictions prediction.Repository, store *cache.Store, concurrency int) *RankingService {
	if concurrency < 1 {
		concurrency = defaultRankingConcurrency
	}

	return &RankingService{
		scoring:     scoringSvc,
		predictions: predictions,
		store:       store,
		concurrency: concurrency,
	}
}

// Ranking returns all participants ordered by total points, ties broken by
// name then user ID so the order is stable between calls.
func (s *RankingService) Ranking(ctx context.Context) ([]RankingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "RankingService.Ranking")
	defer span.End()

	value, err := s.store.GetOrLoad(ctx, cacheKeyRanking, func(ctx context.Context) (any, error) {
		return s.buildRanking(ctx)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]RankingEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected cached ranking type %T", value)
	}

	return entries, nil
}

func (s *RankingService) buildRanking(ctx context.Context) ([]RankingEntry, error) {
	userIDs, err := s.participantIDs(ctx)
	if err != nil {
		return nil, err
	}

	p := pool.NewWithResults[scoring.UserScoreSummary]().
		WithContext(ctx).
		WithMaxGoroutines(s.concurrency).
		WithCancelOnError()
	for _, userID := range userIDs {
		userID := userID
		p.Go(func(ctx context.Context) (scoring.UserScoreSummary, error) {
			return s.scoring.Summary(ctx, userID)
		})
	}

	summaries, err := p.Wait()
	if err != nil {
		return nil, fmt.Errorf("build ranking: %w", err)
	}

	entries := make([]RankingEntry, 0, len(summaries))
	for _, summary := range summaries {
		byPhase := make(map[string]int, len(summary.ByPhase))
		for phase, points := range summary.ByPhase {
			byPhase[string(phase)] = points
		}
		entries = append(entries, RankingEntry{
			UserID:  summary.UserID,
			Name:    summary.Name,
			Total:   summary.Total,
			ByPhase: byPhase,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries, nil
}

// Recompute drops every cached summary and rebuilds them through a bounded
// worker pool, then refreshes the leaderboard itself.
func (s *RankingService) Recompute(ctx context.Context) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "RankingService.Recompute")
	defer span.End()

	userIDs, err := s.participantIDs(ctx)
	if err != nil {
		return RecomputeResult{}, err
	}

	s.store.DeletePrefix(ctx, cacheKeyScorePrefix)
	s.store.Delete(ctx, cacheKeyRanking)
	s.store.Delete(ctx, cacheKeyOfficialScores)

	workers, err := ants.NewPool(defaultRecomputeWorkers)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var failed atomic.Int32
	var wg sync.WaitGroup
	for _, userID := range userIDs {
		userID := userID
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			if _, err := s.scoring.Summary(ctx, userID); err != nil {
				failed.Add(1)
			}
		}); err != nil {
			wg.Done()
			return RecomputeResult{}, fmt.Errorf("submit recompute task: %w", err)
		}
	}
	wg.Wait()

	if _, err := s.buildAndCacheRanking(ctx); err != nil {
		return RecomputeResult{}, err
	}

	return RecomputeResult{
		Users:  len(userIDs),
		Failed: int(failed.Load()),
	}, nil
}

func (s *RankingService) buildAndCacheRanking(ctx context.Context) ([]RankingEntry, error) {
	entries, err := s.buildRanking(ctx)
	if err != nil {
		return nil, err
	}
	s.store.Set(ctx, cacheKeyRanking, entries)
	return entries, nil
}

func (s *RankingService) participantIDs(ctx context.Context) ([]string, error) {
	all, err := s.predictions.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	out := make([]string, 0, len(all))
	for _, id := range all {
		if id == prediction.OfficialUserID {
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}
