package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phishguard/internal/adapter"
)

// PredictModel is the feature-entry form. Its Init command fetches the
// feature-name list from the server and builds one text input per feature.
// Submitting dispatches an async predict command; the finished prediction
// is routed to the result page.
type PredictModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	names      []string
	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool
	errMsg     string
}

func NewPredictModel(ctx context.Context, api adapter.ServerAdapter) *PredictModel {
	return &PredictModel{ctx: ctx, api: api}
}

func (m *PredictModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(textinput.Blink, m.cmdLoadFeatures())
}

func (m *PredictModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case featuresLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.setFeatures(result.names)
		return m, nil

	case predictDoneMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "result", Payload: ShowResult{Resp: result.resp}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && len(m.inputs) > 0 {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			features, err := m.collectFeatures()
			if err != "" {
				m.errMsg = err
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdPredict(features)
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PredictModel) View() string {
	if m.loading {
		return renderPage("WEBSITE CHECK", "Loading feature list...", "")
	}
	if len(m.inputs) == 0 {
		data := ""
		if m.errMsg != "" {
			data = errorStyle.Render("Error: " + m.errMsg)
		}
		return renderPage("WEBSITE CHECK", data, "esc: back")
	}

	nameWidth := 0
	for _, name := range m.names {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	for i, name := range m.names {
		b.WriteString(name)
		b.WriteString(strings.Repeat(" ", nameWidth-len(name)))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Predicting...]\n")
	} else {
		b.WriteString("\n[Predict]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("WEBSITE CHECK", strings.TrimRight(b.String(), "\n"), "tab/↑/↓: move │ enter: predict")
}

func (m *PredictModel) setFeatures(names []string) {
	m.names = names
	m.inputs = make([]textinput.Model, len(names))
	m.focus = 0

	for i, name := range names {
		input := textinput.New()
		input.Placeholder = name
		input.CharLimit = 32
		input.Width = 24
		m.inputs[i] = input
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

// collectFeatures parses every input into a float. The returned string is
// an error message for the view, empty on success.
func (m *PredictModel) collectFeatures() (map[string]float64, string) {
	features := make(map[string]float64, len(m.names))
	for i, name := range m.names {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			return nil, "Feature " + name + " is required"
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "Feature " + name + " must be a number"
		}
		features[name] = value
	}
	return features, ""
}

func (m *PredictModel) cmdLoadFeatures() tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		names, err := api.FeatureNames(ctx)
		return featuresLoadedMsg{names: names, err: err}
	}
}

func (m *PredictModel) cmdPredict(features map[string]float64) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		resp, err := api.Predict(ctx, features)
		return predictDoneMsg{resp: resp, err: err}
	}
}

func (m *PredictModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PredictModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
