package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/handler"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/server"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/MKhiriev/vibe-vault/internal/store"
	"github.com/MKhiriev/vibe-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("vibe-vault-server")
	ctx := log.WithContext(context.Background())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminUsername != "" {
		if err = services.AuthService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("error provisioning admin account")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
