package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/xspring/internal/core/domain"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it together with Metadata.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// errorEntry is one level of an error chain as presented to the user.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain while errors expose their own message.
// The first error that does not ends the walk with its full text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		// domain.WrapCause lists the sentinel first and the cause last; the sentinel
		// text is already the message of the wrapping level.
		if multi, ok := current.(interface{ Unwrap() []error }); ok {
			if errs := multi.Unwrap(); len(errs) > 0 {
				current = errs[len(errs)-1]
				continue
			}
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}

		entry := errorEntry{Message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mc.Metadata()
		}
		current = errors.Unwrap(current)

		// Wrap with an empty message only adds metadata; fold it into the next level.
		if entry.Message == "" && current != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// formatErrorEntries renders the chain as "Error: ..." followed by a "Caused by:" list.
// Metadata keys are printed sorted below the message they belong to.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := "Error: ", "       "
		if i > 0 {
			first, indent = "    → ", "      "
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}

// eventAttrs turns an event into slog attributes with sorted field keys.
func eventAttrs(event domain.Event) []any {
	attrs := make([]any, 0, len(event.Fields)+1)
	attrs = append(attrs, slog.String("event", string(event.Kind)))
	for _, key := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, slog.Any(key, event.Fields[key]))
	}
	return attrs
}
