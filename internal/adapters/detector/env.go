// Package detector selects the prompt mode from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// PromptMode represents how questions are asked.
type PromptMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto PromptMode = iota
	// ModeTUI uses the interactive bubbletea prompts.
	ModeTUI
	// ModeLinear reads one answer per line, for pipes and CI.
	ModeLinear
)

// DetectEnvironment returns ModeTUI when both stdin and stderr are terminals and
// no CI environment variable is set, ModeLinear otherwise.
func DetectEnvironment() PromptMode {
	return detect(
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stderr.Fd())),
		os.Getenv("CI"),
	)
}

func detect(stdinTTY, stderrTTY bool, ci string) PromptMode {
	isCI := ci == "true" || ci == "1"
	if !stdinTTY || !stderrTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --ui flag to the detected mode.
// userFlag should be one of: "auto", "tui", "linear", "plain", or empty.
func ResolveMode(autoDetected PromptMode, userFlag string) PromptMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "plain":
		return ModeLinear
	default:
		return autoDetected
	}
}
