package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cardwise/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Post("/recommendations", handler(s.postV1Recommendations))

			r.Route("/cards", func(r chi.Router) {
				r.Get("/", handler(s.getV1Cards))
				r.Get("/{id}", handler(s.getV1Card))
			})

			r.Route("/businesses", func(r chi.Router) {
				r.Get("/nearby", handler(s.getV1BusinessesNearby))
				r.Get("/{id}", handler(s.getV1Business))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
