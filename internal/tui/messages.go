package tui

import (
	"github.com/MKhiriev/go-material-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root model to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	Err      error
	Username string
	Token    models.Token
}

type submitDoneMsg struct {
	submission models.Submission
	err        error
}

type historyLoadedMsg struct {
	records []models.MaterialRecord
	err     error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
