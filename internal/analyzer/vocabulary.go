package analyzer

import "strings"

const (
	// NoExplanation is returned by Explain when no vocabulary token occurs in the pattern
	NoExplanation = "No explanation available."

	explanationHeader = "Pattern Explanation:"
)

// Term is a single entry of the explanation vocabulary
type Term struct {
	Token       string
	Description string
}

// vocabulary lists the recognized tokens. Order determines explanation output order.
var vocabulary = []Term{
	{Token: "^", Description: "Start of string"},
	{Token: "$", Description: "End of string"},
	{Token: ".", Description: "Any character except newline"},
	{Token: `\d`, Description: "Digit (0-9)"},
	{Token: `\w`, Description: "Word character (a-z, A-Z, 0-9, _)"},
	{Token: `\s`, Description: "Whitespace"},
	{Token: "+", Description: "One or more times"},
	{Token: "*", Description: "Zero or more times"},
	{Token: "?", Description: "Zero or one time"},
	{Token: "{n}", Description: "Exactly n times"},
	{Token: "{n,}", Description: "At least n times"},
	{Token: "{n,m}", Description: "Between n and m times"},
	{Token: "|", Description: "Or"},
	{Token: "()", Description: "Capture group"},
	{Token: "[]", Description: "Character class"},
	{Token: "@", Description: "At symbol (used in emails)"},
	{Token: `\.`, Description: "Dot (.) character"},
	{Token: "-", Description: "Hyphen/minus sign"},
}

// Vocabulary returns a copy of the explanation vocabulary in definition order
func Vocabulary() []Term {
	terms := make([]Term, len(vocabulary))
	copy(terms, vocabulary)
	return terms
}

// Terms returns the vocabulary entries whose token occurs literally in pattern.
// Tokens are reported in vocabulary order, not in order of appearance.
func Terms(pattern string) []Term {
	var found []Term
	for _, term := range vocabulary {
		if strings.Contains(pattern, term.Token) {
			found = append(found, term)
		}
	}
	return found
}

// Explain builds a plain-language explanation of pattern by substring lookup
// against the vocabulary. It never fails; unknown syntax is simply not explained.
func Explain(pattern string) string {
	terms := Terms(pattern)
	if len(terms) == 0 {
		return NoExplanation
	}

	lines := make([]string, 0, len(terms)+1)
	lines = append(lines, explanationHeader)
	for _, term := range terms {
		lines = append(lines, "- "+term.Token+" : "+term.Description)
	}
	return strings.Join(lines, "\n")
}
