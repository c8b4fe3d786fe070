package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"cm-madeira/go_backend/internal/app/config"
	"cm-madeira/go_backend/internal/app/http/handlers"
	"cm-madeira/go_backend/internal/app/http/middleware"
	"cm-madeira/go_backend/internal/infra/store/csvstore"
)

func NewRouter(cfg config.Config, store *csvstore.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(store, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/clients", h.RegisterClient)
		r.Get("/clients", h.ListClients)

		r.Post("/products", h.RegisterProduct)
		r.Get("/products", h.ListProducts)
		r.Get("/products/export", h.ExportProducts)

		r.Post("/quotes", h.CreateQuote)
	})

	return r
}
