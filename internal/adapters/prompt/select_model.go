package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/ui/style"
)

// selectModel asks for exactly one option.
type selectModel struct {
	prompt  domain.SelectPrompt
	cursor  int
	keys    keyMap
	help    help.Model
	done    bool
	aborted bool
}

func newSelectModel(p domain.SelectPrompt) selectModel {
	cursor := p.Cursor
	if cursor < 0 || cursor >= len(p.Options) {
		cursor = 0
	}
	return selectModel{
		prompt: p,
		cursor: cursor,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.prompt.Options)
	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up), keyMsg.String() == "k":
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(keyMsg, m.keys.Down), keyMsg.String() == "j":
		m.cursor = (m.cursor + 1) % n
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		return answeredLine(m.prompt.Label, m.chosen().Name)
	}

	var b strings.Builder
	b.WriteString(questionLine(m.prompt.Label, ""))
	for i, opt := range m.prompt.Options {
		if i == m.cursor {
			b.WriteString(style.Cursor.Render(style.Pointer+" "+optionText(opt)) + "\n")
			continue
		}
		b.WriteString("  " + optionText(opt) + "\n")
	}
	b.WriteString(style.Muted.Render(m.help.View(selectHelp{keys: m.keys})) + "\n")
	return b.String()
}

func (m selectModel) chosen() domain.Option {
	return m.prompt.Options[m.cursor]
}

func optionText(opt domain.Option) string {
	if opt.Name == "" || opt.Name == opt.ID {
		return opt.ID
	}
	return opt.Name + style.Muted.Render(" ("+opt.ID+")")
}

func questionLine(label, suffix string) string {
	line := style.Prefix.Render(style.Question) + " " + style.Label.Render(label)
	if suffix != "" {
		line += " " + suffix
	}
	return line + "\n"
}

func answeredLine(label, answer string) string {
	return style.Answered.Render(style.Check) + " " + style.Label.Render(label) + " " + style.Answered.Render(answer) + "\n"
}
