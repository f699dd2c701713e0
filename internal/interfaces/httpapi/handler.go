package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/gpbuil/fifa2026-new/internal/platform/logging"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	standingsService  *usecase.StandingsService
	bracketService    *usecase.BracketService
	scoringService    *usecase.ScoringService
	rankingService    *usecase.RankingService
	predictionService *usecase.PredictionService
	resultsService    *usecase.ResultsService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	standingsService *usecase.StandingsService,
	bracketService *usecase.BracketService,
	scoringService *usecase.ScoringService,
	rankingService *usecase.RankingService,
	predictionService *usecase.PredictionService,
	resultsService *usecase.ResultsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		standingsService:  standingsService,
		bracketService:    bracketService,
		scoringService:    scoringService,
		rankingService:    rankingService,
		predictionService: predictionService,
		resultsService:    resultsService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
