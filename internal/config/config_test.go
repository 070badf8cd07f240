package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "go", cfg.Engine)
	assert.Equal(t, 10, cfg.RepeatLimit)
	assert.False(t, cfg.Sanitize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromYAML(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	err := v.ReadConfig(strings.NewReader(`
engine: ecmascript
repeat_limit: 4
sanitize: true
log_level: debug
`))
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ecmascript", cfg.Engine)
	assert.Equal(t, 4, cfg.RepeatLimit)
	assert.True(t, cfg.Sanitize)
	assert.Equal(t, "debug", cfg.LogLevel)

	opts, err := cfg.AnalyzerOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestValidate(t *testing.T) {
	valid := Config{Engine: "go", RepeatLimit: 10, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown engine", func(c *Config) { c.Engine = "pcre" }, "invalid engine"},
		{"zero repeat limit", func(c *Config) { c.RepeatLimit = 0 }, "invalid repeat_limit"},
		{"huge repeat limit", func(c *Config) { c.RepeatLimit = 1000 }, "invalid repeat_limit"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
