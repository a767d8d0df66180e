package service

import (
	"fmt"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/store"
)

type Services struct {
	AuthService     AuthService
	PlaylistService PlaylistService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	playlistService := NewPlaylistValidationService().Wrap(
		NewPlaylistService(storages.PlaylistRepository, storages.UserRepository, storages.Transactor, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		PlaylistService: playlistService,
		AppInfoService:  appInfoService,
	}, nil
}
