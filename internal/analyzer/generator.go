package analyzer

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp/syntax"
	"strings"
	"sync"
)

const (
	// DefaultRepeatLimit is how many repetitions past the minimum an unbounded
	// quantifier (*, +, {n,}) may produce
	DefaultRepeatLimit = 10

	// MaxRepeatLimit caps the configurable repeat limit
	MaxRepeatLimit = 100

	// MaxExampleLength is the output budget of one example, in bytes. Once it
	// is spent, quantifiers stop at their minimum count; an example whose
	// mandatory repetitions run past twice the budget is rejected.
	MaxExampleLength = 4096

	// maxSteps bounds syntax nodes visited per example, so nested quantifiers
	// over empty subexpressions terminate too
	maxSteps = 1 << 16

	// printable ASCII range preferred when sampling classes and wildcards
	printableLo = 0x20
	printableHi = 0x7E
)

// ErrUnsupported is returned for syntax nodes the generator cannot instantiate
var ErrUnsupported = errors.New("unsupported regex construct")

// errTooLarge is returned when the minimum repetitions alone exceed the budget
var errTooLarge = fmt.Errorf("%w: example too large", ErrUnsupported)

// Generator produces random strings from a parsed regex syntax tree.
// Generator is safe for concurrent use.
type Generator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	repeatLimit int
	steps       int // nodes visited by the current Generate call
}

// NewGenerator creates a generator drawing from src. A nil src uses a randomly
// seeded PCG source; repeatLimit <= 0 selects DefaultRepeatLimit.
func NewGenerator(src rand.Source, repeatLimit int) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if repeatLimit <= 0 {
		repeatLimit = DefaultRepeatLimit
	}
	if repeatLimit > MaxRepeatLimit {
		repeatLimit = MaxRepeatLimit
	}
	return &Generator{
		rng:         rand.New(src),
		repeatLimit: repeatLimit,
	}
}

// RepeatLimit returns the bound applied to unbounded quantifiers
func (g *Generator) RepeatLimit() int {
	return g.repeatLimit
}

// GenerateString parses pattern with Perl flags and samples one instantiation
func (g *Generator) GenerateString(pattern string) (string, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", err
	}
	return g.Generate(re)
}

// Generate samples one string described by re. Zero-width assertions emit
// nothing, so the result is not guaranteed to match when anchors sit in the
// middle of the pattern; callers verify against a compiled matcher.
func (g *Generator) Generate(re *syntax.Regexp) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.steps = 0
	var sb strings.Builder
	if err := g.walk(&sb, re); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) walk(sb *strings.Builder, re *syntax.Regexp) error {
	g.steps++
	if sb.Len() > 2*MaxExampleLength || g.steps > 4*maxSteps {
		return errTooLarge
	}

	switch re.Op {
	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return nil

	case syntax.OpNoMatch:
		return fmt.Errorf("%w: pattern can never match", ErrUnsupported)

	case syntax.OpLiteral:
		// Case-folded literals match their own spelling
		for _, r := range re.Rune {
			sb.WriteRune(r)
		}
		return nil

	case syntax.OpCharClass:
		r, err := g.pickFromClass(re.Rune)
		if err != nil {
			return err
		}
		sb.WriteRune(r)
		return nil

	case syntax.OpAnyCharNotNL, syntax.OpAnyChar:
		sb.WriteRune(rune(printableLo + g.rng.IntN(printableHi-printableLo+1)))
		return nil

	case syntax.OpCapture:
		return g.walk(sb, re.Sub[0])

	case syntax.OpStar:
		return g.repeat(sb, re.Sub[0], 0, -1)

	case syntax.OpPlus:
		return g.repeat(sb, re.Sub[0], 1, -1)

	case syntax.OpQuest:
		return g.repeat(sb, re.Sub[0], 0, 1)

	case syntax.OpRepeat:
		return g.repeat(sb, re.Sub[0], re.Min, re.Max)

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := g.walk(sb, sub); err != nil {
				return err
			}
		}
		return nil

	case syntax.OpAlternate:
		if len(re.Sub) == 0 {
			return fmt.Errorf("%w: empty alternation", ErrUnsupported)
		}
		return g.walk(sb, re.Sub[g.rng.IntN(len(re.Sub))])
	}

	return fmt.Errorf("%w: %v", ErrUnsupported, re.Op)
}

// repeat emits sub between min and max times. max < 0 means unbounded and is
// replaced by min+repeatLimit. Optional repetitions are skipped once the
// output or step budget is spent.
func (g *Generator) repeat(sb *strings.Builder, sub *syntax.Regexp, min, max int) error {
	if max < 0 {
		max = min + g.repeatLimit
	}
	if max < min {
		max = min
	}

	n := min + g.rng.IntN(max-min+1)
	for i := 0; i < n; i++ {
		if i >= min && g.exhausted(sb) {
			break
		}
		if err := g.walk(sb, sub); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) exhausted(sb *strings.Builder) bool {
	return sb.Len() >= MaxExampleLength || g.steps >= maxSteps
}

// pickFromClass picks a rune from a class given as [lo, hi] pairs.
// Printable ASCII members are preferred so examples stay readable.
func (g *Generator) pickFromClass(ranges []rune) (rune, error) {
	if len(ranges) == 0 || len(ranges)%2 != 0 {
		return 0, fmt.Errorf("%w: empty character class", ErrUnsupported)
	}

	printable := make([]rune, 0, len(ranges))
	for i := 0; i < len(ranges); i += 2 {
		lo, hi := max(ranges[i], printableLo), min(ranges[i+1], printableHi)
		if lo <= hi {
			printable = append(printable, lo, hi)
		}
	}
	if len(printable) > 0 {
		return g.pickWeighted(printable), nil
	}
	return g.pickWeighted(ranges), nil
}

// pickWeighted chooses uniformly across all runes covered by ranges
func (g *Generator) pickWeighted(ranges []rune) rune {
	total := 0
	for i := 0; i < len(ranges); i += 2 {
		total += int(ranges[i+1]-ranges[i]) + 1
	}

	n := g.rng.IntN(total)
	for i := 0; i < len(ranges); i += 2 {
		size := int(ranges[i+1]-ranges[i]) + 1
		if n < size {
			return ranges[i] + rune(n)
		}
		n -= size
	}
	return ranges[0]
}
