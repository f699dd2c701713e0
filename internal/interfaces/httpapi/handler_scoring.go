package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

func (h *Handler) GetMyScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyScore")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	summary, err := h.scoringService.Summary(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "score summary failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetUserScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserScore")
	defer span.End()

	userID := r.PathValue("userID")
	summary, err := h.scoringService.Summary(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "score summary failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	entries, err := h.rankingService.Ranking(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingToDTO(entries))
}
