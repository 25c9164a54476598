package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/internal/tui"
)

var errNoServices = errors.New("client services are not provided")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run alternates between the login flow and the main loop until the user
// quits. Quitting from the login flow is not an error.
func (a *App) Run(ctx context.Context) error {
	for {
		session, ok := a.services.AuthService.Session()
		if !ok {
			var err error
			session, err = a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				a.logger.Info().Msg("user quit before logging in")
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.services.AuthService.Logout()
		a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
	}
}
