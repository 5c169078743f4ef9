package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"astrogen/app"
	"astrogen/internal"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	service *app.AnalysisService
	logger  *internal.Logger
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates a new HTTP application
func NewApp(service *app.AnalysisService, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Post("/api/analyses", a.handleComprehensive)
	a.router.Post("/api/analyses/report", a.handleReport)
	a.router.Post("/api/methods/{name}", a.handleMethod)
}

// Router exposes the mux for embedding and tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server
func (a *App) Start(addr string) error {
	a.logger.Info("http server listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
