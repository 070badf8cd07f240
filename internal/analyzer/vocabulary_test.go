package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularySize(t *testing.T) {
	terms := Vocabulary()
	require.Len(t, terms, 18)
	assert.Equal(t, "^", terms[0].Token)
	assert.Equal(t, "-", terms[len(terms)-1].Token)

	// Returned slice is a copy
	terms[0].Token = "changed"
	assert.Equal(t, "^", Vocabulary()[0].Token)
}

func TestExplain_DefinitionOrder(t *testing.T) {
	got := Explain(`^\d+$`)
	want := strings.Join([]string{
		"Pattern Explanation:",
		"- ^ : Start of string",
		"- $ : End of string",
		`- \d : Digit (0-9)`,
		"- + : One or more times",
	}, "\n")
	assert.Equal(t, want, got)

	// Reversing appearance order does not change output order
	assert.Equal(t, Explain(`$+\d^`), got)
}

func TestExplain_NoTokens(t *testing.T) {
	assert.Equal(t, NoExplanation, Explain("xyz"))
	assert.Equal(t, NoExplanation, Explain(""))
}

func TestExplain_LiteralTokensOnly(t *testing.T) {
	// Real quantifiers are not recognized as {n}/{n,m}; only the literal text is
	got := Explain(`a{2,3}`)
	assert.Equal(t, NoExplanation, got)

	got = Explain(`{n,m}`)
	assert.Contains(t, got, "- {n,m} : Between n and m times")
	assert.NotContains(t, got, "- {n} :")
	assert.NotContains(t, got, "- {n,} :")
}

func TestTerms(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"abc", nil},
		{`\w+\s*`, []string{`\w`, `\s`, "+", "*"}},
		{"(a|b)?", []string{"?", "|"}},
		{"()[]", []string{"()", "[]"}},
		{`a\.b`, []string{".", `\.`}},
		{"[a-z]@", []string{"@", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var tokens []string
			for _, term := range Terms(tt.pattern) {
				tokens = append(tokens, term.Token)
			}
			assert.Equal(t, tt.want, tokens)
		})
	}
}

func TestExplain_DoesNotMutateInput(t *testing.T) {
	pattern := `^[a-z]+@[a-z]+\.com$`
	before := strings.Clone(pattern)
	_ = Explain(pattern)
	assert.Equal(t, before, pattern)
}
