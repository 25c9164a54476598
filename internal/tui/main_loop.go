package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainScreen int

const (
	screenForm mainScreen = iota
	screenResult
	screenHistory
	screenBuildInfo
)

const statusTimeout = 2 * time.Second

// mainLoopModel drives everything after login: the calculation form, the
// result of the last submission, the history table and the build info.
type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	session   models.Token
	buildInfo models.AppBuildInfo

	screen     mainScreen
	prevScreen mainScreen

	inputs     []textinput.Model
	focus      int
	submitting bool
	spinner    spinner.Model

	submission models.Submission

	history        table.Model
	historyCount   int
	loadingHistory bool

	serverVersion string

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Token, buildInfo models.AppBuildInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		session:   session,
		buildInfo: buildInfo,
		screen:    screenForm,
		inputs:    newMaterialInputs(),
		spinner:   s,
		history:   newHistoryTable(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.info):
			if m.screen != screenBuildInfo {
				m.prevScreen = m.screen
				m.screen = screenBuildInfo
			}
			return m, m.cmdServerVersion()
		case key.Matches(msg, keys.history):
			return m.openHistory()
		}
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.submission = msg.submission
		m.screen = screenResult
		return m, nil
	case historyLoadedMsg:
		m.loadingHistory = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.history.SetRows(historyRows(msg.records))
		m.historyCount = len(msg.records)
		return m, nil
	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = "N/A (" + humanizeError(msg.err) + ")"
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.submitting && !m.loadingHistory {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case screenForm:
		body = m.formView()
	case screenResult:
		body = m.resultView()
	case screenHistory:
		body = m.historyView()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	return appStyle.Render(body)
}

// fail ends the loop with logout on session errors and shows every other
// error on the current screen.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	if isSessionError(err) {
		m.logout = true
		return m, tea.Quit
	}

	m.errMsg = humanizeError(err)
	return m, nil
}

func (m mainLoopModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.screen = m.prevScreen
	}
	return m, nil
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	appInfo := m.services.AppInfoService

	return func() tea.Msg {
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
