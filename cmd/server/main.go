package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/handler"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/server"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-ads-board")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if cfg.App.AdminLogin != "" {
		if err = services.AuthService.EnsureAdmin(ctx, cfg.App.AdminLogin, cfg.App.AdminPassword); err != nil {
			return fmt.Errorf("error creating administrator account: %w", err)
		}
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
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
