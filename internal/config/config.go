// Package config loads workspace settings for the smc commands.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// DirName is the workspace directory created by smc init.
const DirName = ".smc"

// DBFileName is the conversion ledger file inside the workspace directory.
const DBFileName = "smc.db"

// Config carries the settings every command reads. Flags override these
// per invocation.
type Config struct {
	LogLevel         string `mapstructure:"log_level"`
	PreserveComments bool   `mapstructure:"preserve_comments"`
	AssertionClicks  bool   `mapstructure:"assertion_clicks"`
}

// Default returns the built-in settings used when no config file is present.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// DBPath returns the ledger path relative to the current directory.
func DBPath() string {
	return filepath.Join(DirName, DBFileName)
}

// Load reads smc.yaml from the current directory when present, applies SMC_
// environment overrides, and returns the merged settings. A missing file is
// not an error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("smc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("SMC")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("preserve_comments", false)
	v.SetDefault("assertion_clicks", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading smc.yaml: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing smc.yaml: %w", err)
	}
	return cfg, nil
}
