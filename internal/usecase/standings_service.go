package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gpbuil/fifa2026-new/internal/domain/bracket"
	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/standings"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

// StandingsService serves group tables and the advancement picture derived
// from official results.
type StandingsService struct {
	data tournamentData
}

func NewStandingsService(teams team.Repository, predictions prediction.Repository, store *cache.Store) *StandingsService {
	return &StandingsService{
		data: tournamentData{teams: teams, predictions: predictions, cache: store},
	}
}

func (s *StandingsService) GroupStandings(ctx context.Context, group string) ([]standings.GroupStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.GroupStandings")
	defer span.End()

	group = strings.ToUpper(strings.TrimSpace(group))
	if !validGroup(group) {
		return nil, fmt.Errorf("%w: unknown group %q", ErrInvalidInput, group)
	}

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	official, err := s.data.officialScores(ctx)
	if err != nil {
		return nil, err
	}

	groupTeams := idx.ByGroup(group)
	if len(groupTeams) == 0 {
		return nil, fmt.Errorf("%w: group %s has no teams", ErrNotFound, group)
	}

	matches := bracket.GroupStageMatches(idx, official)
	return standings.Calculate(groupTeams, filterGroupMatches(matches, group)), nil
}

// AllStandings returns every group's table keyed by group letter.
func (s *StandingsService) AllStandings(ctx context.Context) (map[string][]standings.GroupStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.AllStandings")
	defer span.End()

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}
	official, err := s.data.officialScores(ctx)
	if err != nil {
		return nil, err
	}

	matches := bracket.GroupStageMatches(idx, official)
	out := make(map[string][]standings.GroupStanding, len(team.Groups()))
	for _, group := range team.Groups() {
		out[group] = standings.Calculate(idx.ByGroup(group), filterGroupMatches(matches, group))
	}

	return out, nil
}

func (s *StandingsService) Advancement(ctx context.Context) (standings.Advancement, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.Advancement")
	defer span.End()

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return standings.Advancement{}, err
	}
	official, err := s.data.officialScores(ctx)
	if err != nil {
		return standings.Advancement{}, err
	}

	matches := bracket.GroupStageMatches(idx, official)
	return standings.AdvancedTeams(team.Groups(), idx.All(), matches), nil
}

func filterGroupMatches(matches []match.Match, group string) []match.Match {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out
}

func validGroup(group string) bool {
	for _, g := range team.Groups() {
		if g == group {
			return true
		}
	}
	return false
}
