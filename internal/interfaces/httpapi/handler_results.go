package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

type saveResultRequest struct {
	ScoreA *int `json:"score_a" validate:"required,min=0"`
	ScoreB *int `json:"score_b" validate:"required,min=0"`
}

func (h *Handler) SaveOfficialResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveOfficialResult")
	defer span.End()

	var req saveResultRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.resultsService.SetResult(ctx, matchID, *req.ScoreA, *req.ScoreB); err != nil {
		h.logger.WarnContext(ctx, "save result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "official result saved", "match_id", matchID, "score_a", *req.ScoreA, "score_b", *req.ScoreB)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) ListOfficialResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOfficialResults")
	defer span.End()

	results, err := h.resultsService.OfficialResults(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreMapToDTO(results))
}

func (h *Handler) RecomputeRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeRanking")
	defer span.End()

	result, err := h.rankingService.Recompute(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ranking recompute failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "ranking recomputed", "users", result.Users, "failed", result.Failed)
	writeSuccess(ctx, w, http.StatusOK, map[string]int{"users": result.Users, "failed": result.Failed})
}
