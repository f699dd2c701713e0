package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

func (h *Handler) GetOfficialBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOfficialBracket")
	defer span.End()

	matches, err := h.bracketService.OfficialBracket(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "official bracket failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(matches))
}

func (h *Handler) GetMyBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyBracket")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	matches, err := h.bracketService.UserBracket(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "user bracket failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(matches))
}
