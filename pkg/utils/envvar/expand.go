// Package envvar provides utilities for working with environment variables.
package envvar

import (
	"os"
	"regexp"
	"strings"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(:-[^}]*)?\}`)

// Expand replaces ${VAR_NAME} placeholders with their environment variable
// values. The ${VAR_NAME:-default} form falls back to the default when the
// variable is unset; without a default, an unset variable expands to the
// empty string.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		inner := match[2 : len(match)-1]

		name, fallback, hasFallback := strings.Cut(inner, ":-")

		resolved, ok := os.LookupEnv(name)
		if !ok && hasFallback {
			return fallback
		}

		return resolved
	})
}
