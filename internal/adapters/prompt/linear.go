package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*Linear)(nil)

// Linear asks questions as numbered plain-text lists, one answer per line.
// It is used when the terminal cannot host the interactive UI.
type Linear struct {
	scanner *bufio.Scanner
	out     io.Writer
	output  *termenv.Output
}

// NewLinear creates a line-based prompter.
func NewLinear(in io.Reader, out io.Writer) *Linear {
	profile := termenv.ANSI
	if os.Getenv("NO_COLOR") != "" {
		profile = termenv.Ascii
	}
	return &Linear{
		scanner: bufio.NewScanner(in),
		out:     out,
		output:  termenv.NewOutput(out, termenv.WithProfile(profile)),
	}
}

// Select implements ports.Prompter.
// An empty answer picks the highlighted option; a number or an option id picks that option.
func (l *Linear) Select(ctx context.Context, p domain.SelectPrompt) (domain.Option, error) {
	if len(p.Options) == 0 {
		return domain.Option{}, zerr.With(zerr.Wrap(domain.ErrNoOptions, "cannot prompt"), "label", p.Label)
	}
	cursor := p.Cursor
	if cursor < 0 || cursor >= len(p.Options) {
		cursor = 0
	}

	l.question(p.Label)
	for i, opt := range p.Options {
		marker := " "
		if i == cursor {
			marker = "*"
		}
		l.printf("  %s %2d) %s\n", marker, i+1, linearOptionText(opt))
	}

	for {
		l.printf("Choice [%d]: ", cursor+1)
		answer, err := l.readLine(ctx, p.Label)
		if err != nil {
			return domain.Option{}, err
		}
		if answer == "" {
			return p.Options[cursor], nil
		}
		if idx, ok := lookupOption(p.Options, answer); ok {
			return p.Options[idx], nil
		}
		l.invalid(fmt.Sprintf("%q is not one of the options", answer))
	}
}

// MultiSelect implements ports.Prompter.
// Answers are comma or space separated numbers or ids; an empty answer selects nothing.
func (l *Linear) MultiSelect(ctx context.Context, p domain.MultiSelectPrompt) ([]string, error) {
	l.question(p.Label)
	category := ""
	for i, opt := range p.Options {
		if opt.Category != category {
			category = opt.Category
			l.printf("  %s\n", l.output.String(category).Faint())
		}
		l.printf("    %2d) %s (%s)\n", i+1, opt.Name, opt.ID)
	}

	for {
		l.printf("Dependencies (comma separated, empty for none): ")
		answer, err := l.readLine(ctx, p.Label)
		if err != nil {
			return nil, err
		}
		ids, bad := parseMultiAnswer(p.Options, answer)
		if bad == "" {
			return ids, nil
		}
		l.invalid(fmt.Sprintf("%q is not a known dependency", bad))
	}
}

// Text implements ports.Prompter.
func (l *Linear) Text(ctx context.Context, p domain.TextPrompt) (string, error) {
	if p.Reason != "" {
		l.invalid(p.Reason)
	}
	if p.DefaultOnEmpty && p.Placeholder != "" {
		l.printf("%s %s [%s]: ", l.prefix(), p.Label, p.Placeholder)
	} else {
		l.printf("%s %s ", l.prefix(), p.Label)
	}
	return l.readRaw(ctx, p.Label)
}

func (l *Linear) readLine(ctx context.Context, label string) (string, error) {
	answer, err := l.readRaw(ctx, label)
	return strings.TrimSpace(answer), err
}

// readRaw returns the line as typed; text answers are validated untrimmed.
func (l *Linear) readRaw(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.Wrap(domain.ErrPromptAborted, "prompt cancelled")
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", zerr.With(domain.WrapCause(err, domain.ErrNotInteractive), "label", label)
		}
		return "", zerr.With(zerr.Wrap(domain.ErrNotInteractive, "input closed"), "label", label)
	}
	return l.scanner.Text(), nil
}

func (l *Linear) question(label string) {
	l.printf("%s %s\n", l.prefix(), l.output.String(label).Bold())
}

func (l *Linear) prefix() string {
	return l.output.String("?").Foreground(l.output.Color("2")).Bold().String()
}

func (l *Linear) invalid(reason string) {
	l.printf("%s\n", l.output.String("✗ "+reason).Foreground(l.output.Color("1")))
}

func (l *Linear) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}

func linearOptionText(opt domain.Option) string {
	if opt.Name == "" || opt.Name == opt.ID {
		return opt.ID
	}
	return opt.Name + " (" + opt.ID + ")"
}

// lookupOption resolves an option id or a 1-based number.
// Ids win so that numeric ids such as Java versions stay selectable.
func lookupOption(options []domain.Option, answer string) (int, bool) {
	for i, opt := range options {
		if strings.EqualFold(opt.ID, answer) {
			return i, true
		}
	}
	return listIndex(answer, len(options))
}

// parseMultiAnswer returns the chosen ids in presentation order, or the first token it could not resolve.
func parseMultiAnswer(options []domain.FlatDependency, answer string) ([]string, string) {
	tokens := strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	picked := make(map[int]bool, len(tokens))
	for _, token := range tokens {
		idx, ok := lookupDependency(options, token)
		if !ok {
			return nil, token
		}
		picked[idx] = true
	}

	ids := make([]string, 0, len(picked))
	for i, opt := range options {
		if picked[i] {
			ids = append(ids, opt.ID)
		}
	}
	return ids, ""
}

func lookupDependency(options []domain.FlatDependency, token string) (int, bool) {
	for i, opt := range options {
		if strings.EqualFold(opt.ID, token) {
			return i, true
		}
	}
	return listIndex(token, len(options))
}

func listIndex(answer string, n int) (int, bool) {
	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
