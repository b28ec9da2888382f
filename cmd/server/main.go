package main

import (
	"context"
	"fmt"

	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/internal/handler"
	"github.com/mdpad/go-note-keeper/internal/logger"
	"github.com/mdpad/go-note-keeper/internal/server"
	"github.com/mdpad/go-note-keeper/internal/service"
	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("note-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(services.History)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if err := backgroundWorkers.Run(ctx); err != nil {
			log.Error().Err(err).Msg("background workers stopped with error")
		}
	}()

	srv.RunServer()

	// Stop the workers after the HTTP server has drained and wait for them
	// to flush their backlog before the process exits.
	cancel()
	<-workersDone
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
