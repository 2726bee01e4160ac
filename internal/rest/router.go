// Package rest exposes the shop client and watch list over plain HTTP,
// for users who want the CLI's data without MCP plumbing.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/watch"
)

// Deps are the collaborators the REST handlers operate on.
type Deps struct {
	Client *fortnite.Client
	Watch  *watch.Store
}

// NewRouter builds the REST API router.
func NewRouter(deps Deps) http.Handler {
	h := &handler{deps: deps}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/shop", h.getShop)
		r.Get("/items/{id}", h.getItem)
		r.Get("/search", h.search)

		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", h.listWatched)
			r.Put("/{id}", h.watchItem)
			r.Delete("/{id}", h.unwatchItem)
		})
	})

	return r
}
