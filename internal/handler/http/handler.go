package http

import (
	"github.com/ivmikh/notes-keeper/internal/logger"
	"github.com/ivmikh/notes-keeper/internal/service"
	"github.com/ivmikh/notes-keeper/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		version:  version,
		logger:   logger,
	}
}
