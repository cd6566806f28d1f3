// Package prompt implements ports.Prompter as a terminal UI and as a plain line-based dialog.
package prompt

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*TUI)(nil)

// TUI asks each question with its own short-lived Bubble Tea program.
type TUI struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewTUI creates a TUI prompter reading keys from in and rendering to out.
// Extra program options are appended after the defaults.
func NewTUI(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *TUI {
	return &TUI{in: in, out: out, opts: opts}
}

// Select implements ports.Prompter.
func (t *TUI) Select(ctx context.Context, p domain.SelectPrompt) (domain.Option, error) {
	if len(p.Options) == 0 {
		return domain.Option{}, zerr.With(zerr.Wrap(domain.ErrNoOptions, "cannot prompt"), "label", p.Label)
	}

	final, err := t.run(ctx, newSelectModel(p))
	if err != nil {
		return domain.Option{}, err
	}

	m, ok := final.(selectModel)
	if !ok || m.aborted || !m.done {
		return domain.Option{}, aborted(p.Label)
	}
	return m.chosen(), nil
}

// MultiSelect implements ports.Prompter.
func (t *TUI) MultiSelect(ctx context.Context, p domain.MultiSelectPrompt) ([]string, error) {
	final, err := t.run(ctx, newMultiSelectModel(p))
	if err != nil {
		return nil, err
	}

	m, ok := final.(multiSelectModel)
	if !ok || m.aborted || !m.done {
		return nil, aborted(p.Label)
	}
	return m.chosen(), nil
}

// Text implements ports.Prompter.
func (t *TUI) Text(ctx context.Context, p domain.TextPrompt) (string, error) {
	final, err := t.run(ctx, newTextModel(p))
	if err != nil {
		return "", err
	}

	m, ok := final.(textModel)
	if !ok || m.aborted || !m.done {
		return "", aborted(p.Label)
	}
	return m.value(), nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	}
	opts = append(opts, t.opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil, zerr.Wrap(domain.ErrPromptAborted, "prompt cancelled")
		}
		return nil, zerr.Wrap(err, "prompt failed")
	}
	return final, nil
}

func aborted(label string) error {
	return zerr.With(zerr.Wrap(domain.ErrPromptAborted, "prompt abandoned"), "label", label)
}
