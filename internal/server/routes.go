package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"deal_market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/deals", func(r chi.Router) {
				r.Get("/", handler(s.listV1Deals))
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", handler(s.getV1Deal))
					r.Get("/quote", handler(s.getV1DealQuote))
					r.Post("/reserve", handler(s.postV1DealReserve))
					r.Get("/message", handler(s.getV1DealMessage))
					r.Post("/alert", handler(s.postV1DealAlert))
				})
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
