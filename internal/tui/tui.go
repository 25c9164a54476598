package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit   = errors.New("вышел из программы")
	errNoServices = errors.New("client services are not provided")
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// LoginFlow runs the menu, login and register pages until a session is
// opened or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Token{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("session opened")
	return result.session, nil
}

// MainLoop runs the calculation screens for session. logout is true when
// the user logged out or the server rejected the session.
func (t *TUI) MainLoop(ctx context.Context, session models.Token) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
