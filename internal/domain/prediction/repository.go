package prediction

import "context"

// Repository stores prediction rows. Official results live in the same store
// under OfficialUserID.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Prediction, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, row Prediction) error
}
