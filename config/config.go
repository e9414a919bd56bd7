// Package config loads perch settings from perch.yml and PERCH_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the defaults applied to every prompt.
type Config struct {
	Affirmative  []string      // Answers accepted by yes/no confirmations
	ErrorMessage string        // Used when a question has no error message
	Timeout      time.Duration // Used when a question has no timeout
	MaxRetry     int           // Used when a question has no max retry
	NoColor      bool
	Verbose      bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Affirmative:  []string{"y"},
		ErrorMessage: "Invalid input!",
	}
}

// Load reads settings from path. An empty path looks for perch.yml in the
// current directory; a missing file there is not an error.
//
// Environment variables override the file:
//
//	PERCH_AFFIRMATIVE="y,yes"  PERCH_TIMEOUT=30s  PERCH_NO_COLOR=true
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("affirmative", def.Affirmative)
	v.SetDefault("error_message", def.ErrorMessage)
	v.SetDefault("timeout", "0s")
	v.SetDefault("max_retry", 0)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("PERCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("perch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read perch.yml: %w", err)
			}
		}
	}

	cfg := &Config{
		Affirmative:  splitList(v.GetStringSlice("affirmative")),
		ErrorMessage: v.GetString("error_message"),
		Timeout:      v.GetDuration("timeout"),
		MaxRetry:     v.GetInt("max_retry"),
		NoColor:      v.GetBool("no_color"),
		Verbose:      v.GetBool("verbose"),
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	if cfg.MaxRetry < 0 {
		return nil, fmt.Errorf("max_retry must not be negative, got %d", cfg.MaxRetry)
	}
	if len(cfg.Affirmative) == 0 {
		cfg.Affirmative = def.Affirmative
	}

	return cfg, nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
