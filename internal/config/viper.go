package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter"`
		Escape    string `mapstructure:"escape"`
		SkipLines int    `mapstructure:"skip_lines"`
		Charset   string `mapstructure:"charset"`
	} `mapstructure:"csv"`

	Report struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.typed-csv")
	v.AddConfigPath(".typed-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TYPEDCSV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not make the CLI unusable.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.escape", `"`)
	v.SetDefault("csv.skip_lines", 0)
	v.SetDefault("csv.charset", "")

	v.SetDefault("report.format", "csv")
}

// validateConfig checks configuration values for consistency
func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", config.CSV.Delimiter)
	}
	if len([]rune(config.CSV.Escape)) != 1 {
		return fmt.Errorf("csv escape must be a single character, got %q", config.CSV.Escape)
	}
	if config.CSV.SkipLines < 0 {
		return fmt.Errorf("csv skip_lines must not be negative, got %d", config.CSV.SkipLines)
	}

	if config.Report.Format != "csv" && config.Report.Format != "json" {
		return fmt.Errorf("invalid report format: %s", config.Report.Format)
	}

	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// EscapeRune returns the configured escape character as a rune.
func (c *Config) EscapeRune() rune {
	return []rune(c.CSV.Escape)[0]
}
