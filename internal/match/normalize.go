package match

import (
	"strings"
	"unicode"
)

// Fold lower-cases s and drops separators, so that LOG_LEVEL, log-level, LogLevel
// and loglevel all fold to the same key.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
