package team

import "context"

// Repository serves the tournament's fixed team list.
type Repository interface {
	ListAll(ctx context.Context) ([]Team, error)
}
