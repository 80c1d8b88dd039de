package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/crud-clients/internal/config"
	"github.com/MKhiriev/crud-clients/internal/handler"
	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/server"
	"github.com/MKhiriev/crud-clients/internal/service"
	"github.com/MKhiriev/crud-clients/internal/store"
	"github.com/MKhiriev/crud-clients/models"
)

const loggerRole = "clients-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(loggerRole, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(loggerRole, cfg.Log.Level)
	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
