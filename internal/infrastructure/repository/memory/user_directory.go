package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gpbuil/fifa2026-new/internal/domain/user"
)

type UserDirectory struct {
	mu    sync.RWMutex
	items map[string]user.Profile
}

func NewUserDirectory(profiles []user.Profile) *UserDirectory {
	items := make(map[string]user.Profile, len(profiles))
	for _, p := range profiles {
		items[p.ID] = p
	}

	return &UserDirectory{items: items}
}

func (r *UserDirectory) GetByID(_ context.Context, id string) (user.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	return p, ok, nil
}

func (r *UserDirectory) ListAll(_ context.Context) ([]user.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.Profile, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Put registers or updates a profile; used when a verified principal first
// hits the API.
func (r *UserDirectory) Put(_ context.Context, p user.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	return nil
}
