package ports

import (
	"context"

	"go.trai.ch/xspring/internal/core/domain"
)

// Prompter asks the user one question at a time.
// Every method blocks until the user answers, aborts, or ctx is cancelled.
// An abandoned prompt returns domain.ErrPromptAborted.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Select returns the chosen option.
	Select(ctx context.Context, prompt domain.SelectPrompt) (domain.Option, error)

	// MultiSelect returns the ids of the chosen dependencies in presentation order.
	MultiSelect(ctx context.Context, prompt domain.MultiSelectPrompt) ([]string, error)

	// Text returns the raw answer. Validation is the caller's concern.
	Text(ctx context.Context, prompt domain.TextPrompt) (string, error)
}
