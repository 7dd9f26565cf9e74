package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"phishguard/models"
)

// NavigateTo switches the active page. An optional Payload message is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the async login and register commands.
type AuthResult struct {
	Username string
	Err      error
}

type featuresLoadedMsg struct {
	names []string
	err   error
}

type predictDoneMsg struct {
	resp models.PredictResponse
	err  error
}

// ShowResult carries a finished prediction onto the result page.
type ShowResult struct {
	Resp models.PredictResponse
}

type copiedMsg struct {
	err error
}
