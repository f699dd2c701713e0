package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	"github.com/gpbuil/fifa2026-new/internal/infrastructure/repository/memory"
	"github.com/gpbuil/fifa2026-new/internal/platform/cache"
	idgen "github.com/gpbuil/fifa2026-new/internal/platform/id"
	"github.com/gpbuil/fifa2026-new/internal/platform/logging"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

const testJobToken = "job-token"

type routingVerifier struct{}

// The test verifier treats the bearer token as the user ID; "admin" gets
// the admin flag.
func (routingVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, usecase.ErrUnauthorized
	}
	return user.Principal{
		UserID:  token,
		Name:    strings.ToUpper(token[:1]) + token[1:],
		IsAdmin: token == "admin",
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	teams := memory.NewTeamRepository(memory.SeedTeams())
	predictions := memory.NewPredictionRepository()
	directory := memory.NewUserDirectory(nil)
	store := cache.NewStore(time.Minute)
	generator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(teams, predictions, store)
	standingsSvc := usecase.NewStandingsService(teams, predictions, store)
	bracketSvc := usecase.NewBracketService(teams, predictions, store)
	scoringSvc := usecase.NewScoringService(teams, predictions, directory, store)
	rankingSvc := usecase.NewRankingService(scoringSvc, predictions, store, 2)
	predictionSvc := usecase.NewPredictionService(teams, predictions, store, generator)
	resultsSvc := usecase.NewResultsService(teams, predictions, store, generator)

	handler := NewHandler(teamSvc, standingsSvc, bracketSvc, scoringSvc, rankingSvc, predictionSvc, resultsSvc, logging.NewNop())
	return NewRouter(handler, routingVerifier{}, logging.NewNop(), []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       any    `json:"data"`
	}
	envelope.Data = target
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected apiVersion %q", envelope.APIVersion)
	}
}

func TestRouter_HealthzAndTeams(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/v1/teams", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("teams: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var teams []map[string]any
	decodeData(t, rec, &teams)
	if len(teams) != 48 {
		t.Fatalf("expected 48 teams, got %d", len(teams))
	}
}

func TestRouter_OfficialResultFlowsIntoStandings(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/internal/results/m-A-0-1", "admin", `{"score_a":2,"score_b":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save result: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/groups/A/standings", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("standings: expected 200, got %d", rec.Code)
	}
	var rows []struct {
		TeamID string `json:"team_id"`
		Points int    `json:"points"`
		Played int    `json:"played"`
	}
	decodeData(t, rec, &rows)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Points != 3 || rows[0].Played != 1 {
		t.Fatalf("expected winner with 3 points and 1 played, got %+v", rows[0])
	}
}

func TestRouter_ResultsEndpointRejectsNonAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/v1/internal/results/m-A-0-1", "u1", `{"score_a":1,"score_b":0}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin, got %d", rec.Code)
	}
}

func TestRouter_PredictionAndScoreFlow(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodPut, "/v1/internal/results/m-A-0-1", "admin", `{"score_a":2,"score_b":0}`); rec.Code != http.StatusOK {
		t.Fatalf("save result: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := doRequest(t, router, http.MethodPut, "/v1/predictions/me/m-A-0-1", "u1", `{"score_a":2,"score_b":0}`); rec.Code != http.StatusOK {
		t.Fatalf("save prediction: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/v1/scores/me", "u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("scores: expected 200, got %d", rec.Code)
	}
	var summary struct {
		UserID string `json:"user_id"`
		Total  int    `json:"total"`
	}
	decodeData(t, rec, &summary)
	if summary.UserID != "u1" {
		t.Fatalf("unexpected summary user %q", summary.UserID)
	}
	if summary.Total != 10 {
		t.Fatalf("expected 10 points for an exact group-stage hit, got %d", summary.Total)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/ranking", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ranking: expected 200, got %d", rec.Code)
	}
	var ranking []struct {
		Position int    `json:"position"`
		UserID   string `json:"user_id"`
		Total    int    `json:"total"`
	}
	decodeData(t, rec, &ranking)
	if len(ranking) != 1 || ranking[0].UserID != "u1" || ranking[0].Position != 1 || ranking[0].Total != 10 {
		t.Fatalf("unexpected ranking %+v", ranking)
	}
}

func TestRouter_PredictionsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	if rec := doRequest(t, router, http.MethodGet, "/v1/predictions/me", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRouter_RecomputeRequiresJobToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/ranking/recompute", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/ranking/recompute", strings.NewReader(""))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	okRec := httptest.NewRecorder()
	router.ServeHTTP(okRec, req)
	if okRec.Code != http.StatusOK {
		t.Fatalf("expected 200 with job token, got %d (%s)", okRec.Code, okRec.Body.String())
	}
}

func TestRouter_BracketEndpointReturnsAllKnockoutMatches(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/bracket", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("bracket: expected 200, got %d", rec.Code)
	}
	var matches []struct {
		ID    string `json:"id"`
		Phase string `json:"phase"`
	}
	decodeData(t, rec, &matches)
	if len(matches) != 32 {
		t.Fatalf("expected 32 knockout matches, got %d", len(matches))
	}
	if matches[len(matches)-1].ID != "104" {
		t.Fatalf("expected final match last, got %q", matches[len(matches)-1].ID)
	}
}
