package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.getHealth)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.registerSubmit)
	})

	// JSON API, bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/materials", h.submitMaterial)
		r.Get("/api/materials", h.getHistory)
	})

	// HTML pages, session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Get("/", h.indexPage)
		r.Post("/", h.indexSubmit)
		r.Get("/history", h.historyPage)
		r.Post("/logout", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
