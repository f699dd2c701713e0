package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

type savePredictionRequest struct {
	ScoreA *int `json:"score_a" validate:"required,min=0"`
	ScoreB *int `json:"score_b" validate:"required,min=0"`
}

type savePredictionsRequest struct {
	Predictions []savePredictionItem `json:"predictions" validate:"required,min=1,dive"`
}

type savePredictionItem struct {
	MatchID string `json:"match_id" validate:"required"`
	ScoreA  *int   `json:"score_a" validate:"required,min=0"`
	ScoreB  *int   `json:"score_b" validate:"required,min=0"`
}

func (h *Handler) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	scores, err := h.predictionService.ListForUser(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreMapToDTO(scores))
}

func (h *Handler) SaveMyPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyPrediction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req savePredictionRequest
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
	input := usecase.PredictionInput{MatchID: matchID, ScoreA: *req.ScoreA, ScoreB: *req.ScoreB}
	if err := h.predictionService.Upsert(ctx, principal.UserID, input); err != nil {
		h.logger.WarnContext(ctx, "save prediction failed", "user_id", principal.UserID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) SaveMyPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMyPredictions")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized))
		return
	}

	var req savePredictionsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.PredictionInput, 0, len(req.Predictions))
	for _, item := range req.Predictions {
		inputs = append(inputs, usecase.PredictionInput{
			MatchID: item.MatchID,
			ScoreA:  *item.ScoreA,
			ScoreB:  *item.ScoreB,
		})
	}

	if err := h.predictionService.UpsertMany(ctx, principal.UserID, inputs); err != nil {
		h.logger.WarnContext(ctx, "save predictions failed", "user_id", principal.UserID, "count", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"status": "saved", "count": len(inputs)})
}
