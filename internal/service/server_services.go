package service

import (
	"fmt"

	"github.com/MKhiriev/go-case-sync/internal/config"
	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/internal/store"
)

// ServerServices groups the services of the development remote authority.
type ServerServices struct {
	AuthService          AuthService
	CaseAuthorityService CaseAuthorityService
	AppInfoService       AppInfoService
}

func NewServerServices(storages *store.ServerStorages, cfg config.ServerConfig, logger *logger.Logger) (*ServerServices, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &ServerServices{
		AuthService:          NewAuthService(cfg, logger),
		CaseAuthorityService: NewCaseAuthorityService(storages.Cases, logger),
		AppInfoService:       appInfoService,
	}, nil
}
