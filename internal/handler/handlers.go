package handler

import (
	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/handler/http"
	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
