package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"phishguard/internal/adapter"
	"phishguard/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

// TUI is the terminal client: a menu, login and register forms, a
// feature-entry form, and a result screen, all driven by one Bubble Tea
// program against the server API.
type TUI struct {
	api    adapter.ServerAdapter
	logger *logger.Logger
}

func New(api adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	return &TUI{api: api, logger: log}, nil
}

// Run drives the whole client session. It returns ErrUserQuit when the
// user leaves with ctrl+c or q.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.api),
		"register": NewRegisterModel(ctx, t.api),
		"predict":  NewPredictModel(ctx, t.api),
		"result":   NewResultModel(),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
