package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"alphanumeric", "abcXYZ019", "abcXYZ019"},
		{"all metacharacters", `^$.*+?()[]{}|\`, `^$.*+?()[]{}|\`},
		{"punctuation dropped", "a[1-9]+!@#", "a[19]+"},
		{"spaces dropped", "a b\tc", "abc"},
		{"html brackets dropped", "a<b>c", "abc"},
		{"non-ascii letters dropped", "café", "caf"},
		{"escape kept", `\d{2,4}`, `\d{24}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizePattern(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, SanitizePattern(got), "not idempotent")
		})
	}
}

func TestSanitizeTestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tags removed", "<b>hi</b>there", "hithere"},
		{"no tags", "plain text", "plain text"},
		{"attributes", `<a href="x">link</a>`, "link"},
		{"unclosed bracket kept", "a < b", "a < b"},
		{"closing only kept", "a > b", "a > b"},
		{"nearest close", "<<b>>", ">"},
		{"empty tag", "x<>y", "xy"},
		{"script", "<script>alert(1)</script>", "alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTestString(tt.input))
		})
	}
}

func FuzzSanitizePattern(f *testing.F) {
	f.Add("")
	f.Add("a[1-9]+!@#")
	f.Add(`^\d+$`)
	f.Add("<b>x</b>")
	f.Add(string([]byte{0xff, 0xfe}))

	f.Fuzz(func(t *testing.T, raw string) {
		once := SanitizePattern(raw)
		if twice := SanitizePattern(once); twice != once {
			t.Errorf("SanitizePattern not idempotent: %q -> %q -> %q", raw, once, twice)
		}
		for _, c := range once {
			if !isPatternChar(c) {
				t.Errorf("SanitizePattern(%q) kept disallowed %q", raw, c)
			}
		}
		// Explain must never panic on arbitrary input
		_ = Explain(raw)
	})
}
