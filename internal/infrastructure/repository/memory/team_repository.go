package memory

import (
	"context"
	"sync"

	"github.com/gpbuil/fifa2026-new/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make([]team.Team, len(teams))
	copy(items, teams)

	return &TeamRepository{items: items}
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, len(r.items))
	copy(out, r.items)
	return out, nil
}
