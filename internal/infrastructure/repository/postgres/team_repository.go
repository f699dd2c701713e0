package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gpbuil/fifa2026-new/internal/domain/team"
	qb "github.com/gpbuil/fifa2026-new/internal/platform/querybuilder"
)

const teamsTable = "teams"

type teamTableModel struct {
	ID        string `db:"public_id"`
	Name      string `db:"name"`
	Flag      string `db:"flag"`
	ISO2      string `db:"iso2"`
	GroupName string `db:"group_name"`
	SeedOrder int    `db:"seed_order"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(
		"public_id",
		"name",
		"flag",
		"iso2",
		"group_name",
		"seed_order",
	).From(teamsTable).
		OrderBy("seed_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:    row.ID,
			Name:  row.Name,
			Flag:  row.Flag,
			ISO2:  row.ISO2,
			Group: row.GroupName,
		})
	}
	return out, nil
}
