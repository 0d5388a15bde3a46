package http

import (
	"net/http"

	"jobhunt/internal/config"
	"jobhunt/internal/dashboard"
	"jobhunt/internal/http/handler"
	mw "jobhunt/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config) http.Handler {
	repo := &dashboard.Repo{DSN: cfg.DatabaseURL, Debug: cfg.DBDebug}
	return newRouter(cfg, handler.NewDashboardHandler(repo))
}

func newRouter(cfg config.Config, dh *handler.DashboardHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/job-hunt", http.StatusFound)
	})
	r.Get("/job-hunt", dh.Page)
	r.Get("/job-hunt.json", dh.JSON)

	return r
}
