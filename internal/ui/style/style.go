// Package style provides the shared colors, icons and prompt styles of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Leaf   = lipgloss.Color("#6DB33F")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Question = "?"
	Pointer  = "❯"
	Selected = "◉"
	Circle   = "○"
)

// Prompt styles.
var (
	Label     = lipgloss.NewStyle().Bold(true)
	Prefix    = lipgloss.NewStyle().Foreground(Leaf).Bold(true)
	Answered  = lipgloss.NewStyle().Foreground(Green)
	Cursor    = lipgloss.NewStyle().Foreground(Leaf)
	Muted     = lipgloss.NewStyle().Foreground(Slate)
	ErrorText = lipgloss.NewStyle().Foreground(Red)
)
