package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, `"`, cfg.CSV.Escape)
	assert.Equal(t, 0, cfg.CSV.SkipLines)
	assert.Equal(t, "", cfg.CSV.Charset)
	assert.Equal(t, "csv", cfg.Report.Format)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("TYPEDCSV_CSV_DELIMITER", ";")
	t.Setenv("TYPEDCSV_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.CSV.Escape = `"`
		cfg.Report.Format = "csv"
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }, "delimiter"},
		{"empty escape", func(c *Config) { c.CSV.Escape = "" }, "escape"},
		{"negative skip", func(c *Config) { c.CSV.SkipLines = -1 }, "skip_lines"},
		{"bad report format", func(c *Config) { c.Report.Format = "pdf" }, "report format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.expectErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
			}
		})
	}
}

func TestDelimiterAndEscapeRunes(t *testing.T) {
	cfg := &Config{}
	cfg.CSV.Delimiter = ";"
	cfg.CSV.Escape = "'"

	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, '\'', cfg.EscapeRune())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TYPEDCSV_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("TYPEDCSV_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TYPEDCSV_TEST_MISSING", "fallback"))
}
