package service

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter, logger: logger}
}

func (c *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.GetVersion(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientAppInfoService.ServerVersion").Msg("version request failed")
		return "", mapAdapterError(err)
	}

	return version, nil
}
