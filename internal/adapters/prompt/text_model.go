package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/ui/style"
)

const textCharLimit = 256

// textModel asks for one free-text answer.
type textModel struct {
	prompt  domain.TextPrompt
	input   textinput.Model
	keys    keyMap
	done    bool
	aborted bool
}

func newTextModel(p domain.TextPrompt) textModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = p.Placeholder
	ti.CharLimit = textCharLimit
	ti.Focus()

	return textModel{
		prompt: p,
		input:  ti,
		keys:   newKeyMap(),
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Confirm):
			m.done = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		answer := m.input.Value()
		if m.prompt.DefaultOnEmpty && strings.TrimSpace(answer) == "" {
			answer = m.prompt.Placeholder
		}
		return answeredLine(m.prompt.Label, answer)
	}

	var b strings.Builder
	if m.prompt.Reason != "" {
		b.WriteString(style.ErrorText.Render(style.Cross+" "+m.prompt.Reason) + "\n")
	}
	b.WriteString(questionLine(m.prompt.Label, m.input.View()))
	return b.String()
}

func (m textModel) value() string {
	return m.input.Value()
}
