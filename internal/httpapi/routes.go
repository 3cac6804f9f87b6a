// Package httpapi is the local diagnostics surface: a headless view
// of the session for tooling, in place of the UI's reactive read.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(cache *StateCache) http.Handler {
	r := chi.NewRouter()

	r.Get("/state", State(cache))
	r.Get("/healthz", Healthz)
	return r
}
