package main

import (
	"context"
	"fmt"

	"phishguard/internal/chart"
	"phishguard/internal/config"
	handler "phishguard/internal/handler/http"
	"phishguard/internal/logger"
	"phishguard/internal/ml"
	"phishguard/internal/server"
	"phishguard/internal/service"
	"phishguard/internal/session"
	"phishguard/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("phishguard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	pipeline, err := ml.NewPipeline(cfg.Model, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading model artifacts")
	}

	services := service.NewServices(storages, pipeline, log)
	sessions := session.NewManager(cfg.App)
	renderer := chart.NewRenderer(cfg.Server.StaticDir, log)

	handlers := handler.NewHandler(services, sessions, renderer, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
