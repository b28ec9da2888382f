package http

import (
	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}
