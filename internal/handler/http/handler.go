package http

import (
	"phishguard/internal/chart"
	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/internal/service"
	"phishguard/internal/session"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	renderer *chart.Renderer

	staticDir string

	logger *logger.Logger
}

// NewHandler constructs the transport layer over the given services,
// session manager and chart renderer.
func NewHandler(services *service.Services, sessions *session.Manager, renderer *chart.Renderer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		renderer:  renderer,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
