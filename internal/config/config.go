// Package config provides Viper-based configuration loading for pelletstat.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the log sink: "stderr", "stdout", or a file path.
	Output string `mapstructure:"output"`
}

// AnalysisConfig selects the weapon and extra-calls range to enumerate.
type AnalysisConfig struct {
	// Weapon is a weapon ID from WeaponsDir. When set it takes precedence over Pellets.
	Weapon string `mapstructure:"weapon"`
	// Pellets is the pellet count used when Weapon is empty.
	Pellets int `mapstructure:"pellets"`
	// ExtraCallsFrom is the inclusive lower bound of extra draws between pellets.
	ExtraCallsFrom int `mapstructure:"extra_calls_from"`
	// ExtraCallsTo is the inclusive upper bound of extra draws between pellets.
	ExtraCallsTo int `mapstructure:"extra_calls_to"`
	// WeaponsDir is the directory of weapon YAML definitions.
	WeaponsDir string `mapstructure:"weapons_dir"`
}

// ReportConfig controls how results are rendered.
type ReportConfig struct {
	// Format is "text", "json", or "yaml".
	Format string `mapstructure:"format"`
	// Probabilities renders percentages instead of raw counts in text reports.
	Probabilities bool `mapstructure:"probabilities"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Report   ReportConfig   `mapstructure:"report"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAnalysis(c.Analysis); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateReport(c.Report); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateAnalysis(a AnalysisConfig) error {
	var errs []string
	if a.Weapon == "" && a.Pellets < 1 {
		errs = append(errs, fmt.Sprintf("analysis.pellets must be >= 1 when analysis.weapon is empty, got %d", a.Pellets))
	}
	if a.Weapon != "" && a.WeaponsDir == "" {
		errs = append(errs, "analysis.weapons_dir must not be empty when analysis.weapon is set")
	}
	if a.ExtraCallsFrom < 0 {
		errs = append(errs, fmt.Sprintf("analysis.extra_calls_from must be >= 0, got %d", a.ExtraCallsFrom))
	}
	if a.ExtraCallsTo < a.ExtraCallsFrom {
		errs = append(errs, fmt.Sprintf("analysis.extra_calls_to (%d) must be >= analysis.extra_calls_from (%d)", a.ExtraCallsTo, a.ExtraCallsFrom))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateReport(r ReportConfig) error {
	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[r.Format] {
		return fmt.Errorf("report.format must be one of [text, json, yaml], got %q", r.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and RNDTABLE_ environment
// overrides applied, but no config file.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("RNDTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("analysis.weapon", "")
	v.SetDefault("analysis.pellets", 1)
	v.SetDefault("analysis.extra_calls_from", 0)
	v.SetDefault("analysis.extra_calls_to", 0)
	v.SetDefault("analysis.weapons_dir", "content/weapons")

	v.SetDefault("report.format", "text")
	v.SetDefault("report.probabilities", false)
}
