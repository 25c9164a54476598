package handler

import (
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-material-keeper/internal/handler/http"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
)

// Handlers holds one handler per enabled transport.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		httpHandler, err := http.NewHandler(services, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating HTTP handler: %w", err)
		}
		handlers.HTTP = httpHandler
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
