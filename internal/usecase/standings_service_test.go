package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gpbuil/fifa2026-new/internal/domain/match"
	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
)

func TestStandingsService_GroupStandings(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepository{teams: fourGroupTeams()}
	predictions := newStubPredictionRepository()
	predictions.seed(prediction.OfficialUserID, match.GroupMatchID("A", 0, 1), 2, 0)

	service := NewStandingsService(teams, predictions, cache.NewStore(time.Minute))

	rows, err := service.GroupStandings(context.Background(), "a")
	if err != nil {
		t.Fatalf("GroupStandings error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].TeamID != "A1" || rows[0].Points != 3 || rows[0].GoalsDifference != 2 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[3].TeamID != "A2" {
		t.Fatalf("expected the beaten team last, got %+v", rows[3])
	}
}

func TestStandingsService_GroupStandings_UnknownGroup(t *testing.T) {
	t.Parallel()

	service := NewStandingsService(&stubTeamRepository{teams: fourGroupTeams()}, newStubPredictionRepository(), cache.NewStore(time.Minute))

	_, err := service.GroupStandings(context.Background(), "Z")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsService_AllStandings(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepository{teams: fourGroupTeams()}
	predictions := newStubPredictionRepository()
	service := NewStandingsService(teams, predictions, cache.NewStore(time.Minute))

	all, err := service.AllStandings(context.Background())
	if err != nil {
		t.Fatalf("AllStandings error: %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("expected 12 groups, got %d", len(all))
	}
	if len(all["A"]) != 4 {
		t.Fatalf("expected 4 rows in group A, got %d", len(all["A"]))
	}
	if len(all["C"]) != 0 {
		t.Fatalf("expected empty group C, got %d rows", len(all["C"]))
	}
}

func TestStandingsService_Advancement(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepository{teams: fourGroupTeams()}
	predictions := newStubPredictionRepository()
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			// lower-numbered team always wins, so A1 > A2 > A3 > A4
			predictions.seed(prediction.OfficialUserID, match.GroupMatchID("A", i, j), 1, 0)
		}
	}

	service := NewStandingsService(teams, predictions, cache.NewStore(time.Minute))

	adv, err := service.Advancement(context.Background())
	if err != nil {
		t.Fatalf("Advancement error: %v", err)
	}
	if len(adv.Winners) != 1 || adv.Winners[0].ID != "A1" {
		t.Fatalf("unexpected winners: %+v", adv.Winners)
	}
	if len(adv.RunnersUp) != 1 || adv.RunnersUp[0].ID != "A2" {
		t.Fatalf("unexpected runners-up: %+v", adv.RunnersUp)
	}
	if adv.PlacementIndex["1A"] != "A1" || adv.PlacementIndex["3A"] != "A3" {
		t.Fatalf("unexpected placements: %+v", adv.PlacementIndex)
	}
	if _, ok := adv.PlacementIndex["1B"]; ok {
		t.Fatal("unstarted group B must not place teams")
	}
}

func TestStandingsService_TeamIndexIsCached(t *testing.T) {
	t.Parallel()

	teams := &stubTeamRepository{teams: fourGroupTeams()}
	service := NewStandingsService(teams, newStubPredictionRepository(), cache.NewStore(time.Minute))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := service.AllStandings(ctx); err != nil {
			t.Fatal(err)
		}
	}

	if n := teams.listCalls.Load(); n != 1 {
		t.Fatalf("team list loaded %d times", n)
	}
}
