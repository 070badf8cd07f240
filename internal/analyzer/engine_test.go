package analyzer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/regexninja/internal/analyzer"
)

func TestEngineByName(t *testing.T) {
	for _, name := range analyzer.EngineNames() {
		t.Run(name, func(t *testing.T) {
			engine, err := analyzer.EngineByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, engine.Name())
		})
	}

	_, err := analyzer.EngineByName("pcre")
	require.Error(t, err)
	assert.True(t, errors.Is(err, analyzer.ErrUnknownEngine))
}

func TestEngineNames(t *testing.T) {
	assert.Equal(t, []string{"ecmascript", "go", "re2"}, analyzer.EngineNames())
}

func TestEngines_CommonBehavior(t *testing.T) {
	for _, name := range analyzer.EngineNames() {
		t.Run(name, func(t *testing.T) {
			engine, err := analyzer.EngineByName(name)
			require.NoError(t, err)
			a := analyzer.New(analyzer.WithEngine(engine))

			assert.True(t, a.Validate(""))
			assert.False(t, a.Validate("("))
			assert.True(t, a.Match(`\d+`, "abc123"))
			assert.False(t, a.Match(`\d+`, "abc"))
			assert.False(t, a.Match("(", "anything"))

			example := a.GenerateExample(`^[a-z]+@[a-z]+\.com$`)
			require.NotEqual(t, analyzer.InvalidExample, example)
			assert.True(t, a.Match(`^[a-z]+@[a-z]+\.com$`, example))
		})
	}
}

func TestECMAScriptEngine_Dialect(t *testing.T) {
	engine, err := analyzer.EngineByName(analyzer.EngineECMAScript)
	require.NoError(t, err)
	a := analyzer.New(analyzer.WithEngine(engine))

	// Lookaround and backreferences are ECMAScript features RE2 rejects
	assert.True(t, a.Validate(`foo(?=bar)`))
	assert.True(t, a.Match(`foo(?=bar)`, "foobar"))
	assert.False(t, a.Match(`foo(?=bar)`, "foobaz"))
	assert.True(t, a.Match(`(a)\1`, "xaay"))

	goOnly := analyzer.New()
	assert.False(t, goOnly.Validate(`foo(?=bar)`))
}
