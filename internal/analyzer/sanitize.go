package analyzer

import (
	"regexp"
	"strings"
)

// tagPattern matches HTML-tag-like fragments: '<' up to the nearest '>'
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// patternMetachars are the non-alphanumeric characters SanitizePattern keeps
const patternMetachars = `^$.*+?()[]{}|\`

// SanitizePattern removes every character that is not an ASCII letter, an
// ASCII digit or one of the regex metacharacters ^ $ . * + ? ( ) [ ] { } | \
func SanitizePattern(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, c := range raw {
		if isPatternChar(c) {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func isPatternChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.ContainsRune(patternMetachars, c)
}

// SanitizeTestString strips HTML-tag-like fragments from raw.
// This is best-effort stripping, not an HTML parser.
func SanitizeTestString(raw string) string {
	return tagPattern.ReplaceAllString(raw, "")
}
