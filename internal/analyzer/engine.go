package analyzer

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/wasilibs/go-re2"
)

// Engine names accepted by EngineByName
const (
	EngineGo         = "go"
	EngineECMAScript = "ecmascript"
	EngineRE2        = "re2"
)

// DefaultMatchTimeout bounds a single backtracking match in the ECMAScript engine
const DefaultMatchTimeout = 2 * time.Second

// ErrUnknownEngine is returned when an engine name is not registered
var ErrUnknownEngine = errors.New("unknown regex engine")

// Matcher tests a subject for at least one match anywhere in it
type Matcher interface {
	MatchString(s string) bool
}

// Engine compiles patterns in a particular regex dialect
type Engine interface {
	Name() string
	Compile(pattern string) (Matcher, error)
}

var engines = map[string]func() Engine{
	EngineGo:         func() Engine { return GoEngine{} },
	EngineECMAScript: func() Engine { return ECMAScriptEngine{Timeout: DefaultMatchTimeout} },
	EngineRE2:        func() Engine { return RE2Engine{} },
}

// EngineByName returns the engine registered under name
func EngineByName(name string) (Engine, error) {
	factory, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownEngine, name, EngineNames())
	}
	return factory(), nil
}

// EngineNames returns the registered engine names, sorted
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GoEngine uses the standard library RE2-syntax engine
type GoEngine struct{}

func (GoEngine) Name() string { return EngineGo }

func (GoEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// ECMAScriptEngine approximates the JavaScript RegExp dialect (lookarounds,
// backreferences) using regexp2's ECMAScript mode.
type ECMAScriptEngine struct {
	Timeout time.Duration
}

func (ECMAScriptEngine) Name() string { return EngineECMAScript }

func (e ECMAScriptEngine) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	if e.Timeout > 0 {
		re.MatchTimeout = e.Timeout
	}
	return ecmaMatcher{re: re}, nil
}

type ecmaMatcher struct {
	re *regexp2.Regexp
}

// MatchString reports a timeout or engine error as no match
func (m ecmaMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	if err != nil {
		return false
	}
	return ok
}

// RE2Engine runs the reference RE2 implementation compiled to WebAssembly
type RE2Engine struct{}

func (RE2Engine) Name() string { return EngineRE2 }

func (RE2Engine) Compile(pattern string) (Matcher, error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}
