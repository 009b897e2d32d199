package api

import (
	"net/http"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/httpx"
)

// openPaths are reachable without an API key. The health probe and the
// human-facing dashboard stay unauthenticated.
var openPaths = map[string]bool{
	"/health":    true,
	"/dashboard": true,
}

// requireAPIKey gates every other endpoint behind the X-API-Key header.
// An empty configured key disables the gate.
func (s *Server) requireAPIKey() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.apiKey == "" || openPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get("X-API-Key") != s.apiKey {
				_ = httpx.WriteJSONError(w, http.StatusUnauthorized, "Invalid or missing API key.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
