package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/auth/signup", handler.SignUp)
	mux.HandleFunc("POST /api/auth/signin", handler.SignIn)
	mux.HandleFunc("POST /api/seed-players", handler.SeedPlayers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /api/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /api/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("GET /api/lineup", RequireAuth(verifier, http.HandlerFunc(handler.GetLineup)))
	mux.Handle("POST /api/lineup/save", RequireAuth(verifier, http.HandlerFunc(handler.SaveLineup)))
}
