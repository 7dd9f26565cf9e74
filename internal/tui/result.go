package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"phishguard/models"
)

// ResultModel shows the classification verdict. The label can be copied to
// the clipboard, and a new check can be started without logging in again.
type ResultModel struct {
	resp   models.PredictResponse
	status string
}

func NewResultModel() *ResultModel {
	return &ResultModel{}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case ShowResult:
		m.resp = result.Resp
		m.status = ""
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.status = errorStyle.Render("Copy failed: " + result.err.Error())
		} else {
			m.status = okStyle.Render("Copied to clipboard")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "c":
		label := m.resp.Label
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(label)}
		}
	case "n", "enter":
		return m, func() tea.Msg { return NavigateTo{Page: "predict"} }
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *ResultModel) View() string {
	var b strings.Builder
	b.WriteString(m.resp.Label)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PREDICTION RESULT", strings.TrimRight(b.String(), "\n"), "c: copy │ n: new check │ q: quit")
}
