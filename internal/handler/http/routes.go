package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router: public pages, the session-gated prediction
// pages, the JSON API, and static assets (including the generated chart).
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public pages
	router.Get("/", h.home)
	router.Post("/", h.home)
	router.Get("/register", h.registerPage)
	router.Post("/register", h.registerPage)
	router.Get("/login", h.loginPage)
	router.Post("/login", h.loginPage)
	router.Get("/logout", h.logout)

	// pages behind the login gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/predict", h.predictPage)
		r.Post("/predict", h.predictPage)
		r.Get("/chart", h.chartPage)
	})

	// JSON API for the terminal client
	router.Post("/api/user/register", h.apiRegister)
	router.Post("/api/user/login", h.apiLogin)
	router.Group(func(r chi.Router) {
		r.Use(h.apiAuth)
		r.Get("/api/features", h.apiFeatures)
		r.Post("/api/predict", h.apiPredict)
	})

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))

	return router
}
