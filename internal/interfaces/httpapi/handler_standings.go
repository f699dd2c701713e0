package httpapi

import "net/http"

func (h *Handler) ListGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGroupStandings")
	defer span.End()

	group := r.PathValue("group")
	rows, err := h.standingsService.GroupStandings(ctx, group)
	if err != nil {
		h.logger.WarnContext(ctx, "group standings failed", "group", group, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) ListAllStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllStandings")
	defer span.End()

	all, err := h.standingsService.AllStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "all standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]standingDTO, len(all))
	for group, rows := range all {
		out[group] = standingsToDTO(rows)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetAdvancement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAdvancement")
	defer span.End()

	adv, err := h.standingsService.Advancement(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "advancement failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, advancementToDTO(adv))
}
