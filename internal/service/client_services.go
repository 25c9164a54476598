package service

import (
	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/validators"
)

type ClientServices struct {
	AuthService     ClientAuthService
	MaterialService ClientMaterialService
	AppInfoService  ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, validators.NewUserValidator(), logger),
		MaterialService: NewClientMaterialService(serverAdapter, validators.NewMaterialValidator(), logger),
		AppInfoService:  NewClientAppInfoService(serverAdapter, logger),
	}
}
