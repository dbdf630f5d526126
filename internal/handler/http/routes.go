package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes behind the bearer-session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/updateUsername", h.updateUsername)
		r.Post("/api/updatePassword", h.updatePassword)
		r.Post("/api/create_link_token", h.createLinkToken)
		r.Post("/api/exchange_token", h.exchangeToken)
		r.Get("/api/transactions", h.getTransactions)
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("API is running"))
}
