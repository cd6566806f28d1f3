package prompt_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xspring/internal/adapters/prompt"
	"go.trai.ch/xspring/internal/core/domain"
)

func headless(input string) (*prompt.TUI, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.NewTUI(strings.NewReader(input), &out, tea.WithoutRenderer()), &out
}

func TestTUI_Select(t *testing.T) {
	tui, _ := headless("j\r")

	got, err := tui.Select(context.Background(), domain.SelectPrompt{
		Label:   "Packaging:",
		Options: []domain.Option{{ID: "jar", Name: "Jar"}, {ID: "war", Name: "War"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "war", got.ID)
}

func TestTUI_Text(t *testing.T) {
	tui, _ := headless("demo\r")

	got, err := tui.Text(context.Background(), domain.TextPrompt{Label: "Artifact ID:"})

	require.NoError(t, err)
	assert.Equal(t, "demo", got)
}

func TestTUI_SelectWithoutOptions(t *testing.T) {
	tui, _ := headless("")

	_, err := tui.Select(context.Background(), domain.SelectPrompt{Label: "Packaging:"})

	require.ErrorIs(t, err, domain.ErrNoOptions)
}

func TestTUI_CancelledContextAborts(t *testing.T) {
	tui, _ := headless("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tui.Text(ctx, domain.TextPrompt{Label: "Group ID:"})

	require.ErrorIs(t, err, domain.ErrPromptAborted)
}
