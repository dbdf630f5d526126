package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/ekalin/fintrack/internal/config"
	httphandler "github.com/ekalin/fintrack/internal/handler/http"
	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/provider"
	"github.com/ekalin/fintrack/internal/server"
	"github.com/ekalin/fintrack/internal/service"
	"github.com/ekalin/fintrack/internal/store"
	"github.com/ekalin/fintrack/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments pass configuration through the
	// environment directly.
	_ = godotenv.Load()

	log := logger.NewLogger("fintrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying database migrations")
	}

	repos := store.NewRepositories(db, log)

	providerClient := provider.NewPlaidClient(provider.Config{
		BaseURL:              cfg.Plaid.BaseURL,
		ClientID:             cfg.Plaid.ClientID,
		Secret:               cfg.Plaid.Secret,
		Timeout:              cfg.Plaid.Timeout,
		SandboxInstitutionID: cfg.Plaid.SandboxInstitutionID,
	}, log)

	services := service.NewServices(repos, providerClient, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(services, repos, cfg.Workers, log)
	background.Run()
	defer background.Stop()

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
