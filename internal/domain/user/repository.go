package user

import "context"

// Profile is the pool-facing identity of a participant.
type Profile struct {
	ID    string
	Name  string
	Email string
}

// Directory resolves participant profiles for display. Implementations may
// be backed by the account service or by a local table.
type Directory interface {
	GetByID(ctx context.Context, id string) (Profile, bool, error)
	ListAll(ctx context.Context) ([]Profile, error)
}
