package http

import (
	"time"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/service"
)

type Handler struct {
	services *service.ServerServices

	fingerprintKey string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.ServerServices, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		fingerprintKey: cfg.TokenSignKey,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
