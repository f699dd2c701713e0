package usecase

import (
	"context"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

// TeamService serves the fixed tournament team list.
type TeamService struct {
	data tournamentData
}

func NewTeamService(teams team.Repository, predictions prediction.Repository, store *cache.Store) *TeamService {
	return &TeamService{
		data: tournamentData{teams: teams, predictions: predictions, cache: store},
	}
}

// ListTeams returns every team in seed order.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeams")
	defer span.End()

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}

	return idx.All(), nil
}

// ListGroupTeams returns one group's teams in seed order.
func (s *TeamService) ListGroupTeams(ctx context.Context, group string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListGroupTeams")
	defer span.End()

	idx, err := s.data.teamIndex(ctx)
	if err != nil {
		return nil, err
	}

	return idx.ByGroup(group), nil
}
