package service

import (
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/store"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	MaterialService MaterialService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validators.NewUserValidator(), cfg.App, logger),
		MaterialService: NewMaterialService(storages.MaterialRepository, validators.NewMaterialValidator(), logger),
		AppInfoService:  appInfoService,
		HealthService:   NewHealthService(storages, logger),
	}, nil
}
