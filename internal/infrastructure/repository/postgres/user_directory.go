package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	qb "github.com/gpbuil/fifa2026-new/internal/platform/querybuilder"
)

const usersTable = "users"

type userTableModel struct {
	ID    string `db:"public_id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

type UserDirectory struct {
	db *sqlx.DB
}

func NewUserDirectory(db *sqlx.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (r *UserDirectory) GetByID(ctx context.Context, id string) (user.Profile, bool, error) {
	query, args, err := qb.Select("public_id", "name", "email").
		From(usersTable).
		Where(qb.Eq("public_id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.Profile{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.Profile{}, false, nil
		}
		return user.Profile{}, false, fmt.Errorf("get user: %w", err)
	}

	return user.Profile{ID: row.ID, Name: row.Name, Email: row.Email}, true, nil
}

func (r *UserDirectory) ListAll(ctx context.Context) ([]user.Profile, error) {
	query, args, err := qb.Select("public_id", "name", "email").
		From(usersTable).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, user.Profile{ID: row.ID, Name: row.Name, Email: row.Email})
	}
	return out, nil
}
