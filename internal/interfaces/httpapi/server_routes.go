package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/groups/standings", handler.ListAllStandings)
	mux.HandleFunc("GET /v1/groups/{group}/standings", handler.ListGroupStandings)
	mux.HandleFunc("GET /v1/advancement", handler.GetAdvancement)
	mux.HandleFunc("GET /v1/bracket", handler.GetOfficialBracket)
	mux.HandleFunc("GET /v1/ranking", handler.GetRanking)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/predictions/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPredictions)))
	mux.Handle("PUT /v1/predictions/me", RequireAuth(verifier, http.HandlerFunc(handler.SaveMyPredictions)))
	mux.Handle("PUT /v1/predictions/me/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.SaveMyPrediction)))
	mux.Handle("GET /v1/bracket/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyBracket)))
	mux.Handle("GET /v1/scores/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyScore)))
	mux.Handle("GET /v1/scores/{userID}", RequireAuth(verifier, http.HandlerFunc(handler.GetUserScore)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, internalJobToken string) {
	mux.Handle("PUT /v1/internal/results/{matchID}", RequireAdmin(verifier, http.HandlerFunc(handler.SaveOfficialResult)))
	mux.Handle("GET /v1/internal/results", RequireAdmin(verifier, http.HandlerFunc(handler.ListOfficialResults)))
	mux.Handle("POST /v1/internal/ranking/recompute", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RecomputeRanking)))
}
