package http

import (
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
)

type Handler struct {
	services  *service.Services
	cfg       config.Server
	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		templates: templates,
		logger:    logger,
	}, nil
}
