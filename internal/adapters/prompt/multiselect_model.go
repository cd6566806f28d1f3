package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/ui/style"
)

const defaultPageSize = 5

// multiSelectModel asks for any number of dependencies. Typing filters the list.
type multiSelectModel struct {
	prompt   domain.MultiSelectPrompt
	filter   textinput.Model
	visible  []int
	cursor   int
	offset   int
	selected map[string]bool
	keys     keyMap
	help     help.Model
	done     bool
	aborted  bool
}

func newMultiSelectModel(p domain.MultiSelectPrompt) multiSelectModel {
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}

	ti := textinput.New()
	ti.Prompt = style.Muted.Render("search: ")
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := multiSelectModel{
		prompt:   p,
		filter:   ti,
		selected: make(map[string]bool),
		keys:     newKeyMap(),
		help:     help.New(),
	}
	m.applyFilter()
	return m
}

func (m multiSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Confirm):
			m.done = true
			m.filter.Blur()
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Toggle):
			if len(m.visible) > 0 {
				id := m.prompt.Options[m.visible[m.cursor]].ID
				m.selected[id] = !m.selected[id]
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(keyMsg, m.keys.Down):
			m.move(1)
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// move shifts the cursor by delta, wrapping around and keeping it inside the page window.
func (m *multiSelectModel) move(delta int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n

	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+m.prompt.PageSize:
		m.offset = m.cursor - m.prompt.PageSize + 1
	}
}

// applyFilter recomputes the visible options for the current filter text.
func (m *multiSelectModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = make([]int, 0, len(m.prompt.Options))
	for i, opt := range m.prompt.Options {
		if query == "" ||
			strings.Contains(strings.ToLower(opt.Name), query) ||
			strings.Contains(strings.ToLower(opt.ID), query) ||
			strings.Contains(strings.ToLower(opt.Category), query) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

// chosen returns the selected ids in presentation order.
func (m multiSelectModel) chosen() []string {
	ids := make([]string, 0, len(m.selected))
	for _, opt := range m.prompt.Options {
		if m.selected[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

func (m multiSelectModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		chosen := m.chosen()
		if len(chosen) == 0 {
			return answeredLine(m.prompt.Label, "none")
		}
		return answeredLine(m.prompt.Label, strings.Join(chosen, ", "))
	}

	var b strings.Builder
	b.WriteString(questionLine(m.prompt.Label, m.filter.View()))

	if len(m.visible) == 0 {
		b.WriteString(style.Muted.Render("  no matching dependencies") + "\n")
	}

	end := min(m.offset+m.prompt.PageSize, len(m.visible))
	for row := m.offset; row < end; row++ {
		opt := m.prompt.Options[m.visible[row]]

		mark := style.Circle
		if m.selected[opt.ID] {
			mark = style.Answered.Render(style.Selected)
		}
		line := mark + " " + opt.Name + style.Muted.Render(" ["+opt.Category+"]")

		if row == m.cursor {
			b.WriteString(style.Cursor.Render(style.Pointer) + " " + line + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString(style.Muted.Render(m.help.View(multiSelectHelp{keys: m.keys})) + "\n")
	return b.String()
}
