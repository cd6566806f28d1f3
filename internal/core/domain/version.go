package domain

import "regexp"

type versionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// versionRules are tried in order; only the first matching rule is applied.
var versionRules = []versionRule{
	{pattern: regexp.MustCompile(`\.RELEASE$`), replacement: ""},
	{pattern: regexp.MustCompile(`\.BUILD-SNAPSHOT$`), replacement: "-SNAPSHOT"},
	{pattern: regexp.MustCompile(`\.M(\d+)`), replacement: "-M$1"},
	{pattern: regexp.MustCompile(`\.RC(\d+)`), replacement: "-RC$1"},
}

// NormalizeVersion maps a catalog version identifier to the form the generation endpoint
// accepts, e.g. "3.2.0.RELEASE" -> "3.2.0" and "3.3.0.M1" -> "3.3.0-M1".
// Exactly one rule is applied, so the result is stable under a second call only for ids
// carrying a single channel marker.
func NormalizeVersion(raw string) string {
	for _, rule := range versionRules {
		if rule.pattern.MatchString(raw) {
			return rule.pattern.ReplaceAllString(raw, rule.replacement)
		}
	}
	return raw
}
