package domain

import (
	"strings"
	"unicode"
)

// Rule checks a single free-text answer.
type Rule func(input string) error

// Required rejects answers that are empty after trimming surrounding whitespace.
func Required(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}
	return nil
}

// NoWhitespace rejects answers containing any whitespace character.
// Group and artifact ids end up in package names and paths.
func NoWhitespace(input string) error {
	if strings.IndexFunc(input, unicode.IsSpace) >= 0 {
		return ErrContainsWhitespace
	}
	return nil
}

// IdentifierRules are applied to the group id and the artifact id.
var IdentifierRules = []Rule{Required, NoWhitespace}

// Validate runs rules in order and returns the first failure.
func Validate(input string, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(input); err != nil {
			return err
		}
	}
	return nil
}
