package http

import (
	"time"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/MKhiriev/vibe-vault/internal/utils"
)

type Handler struct {
	services *service.Services

	newTraceID     func() string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		newTraceID:     utils.NewTraceID,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
