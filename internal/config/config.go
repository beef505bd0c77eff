// Package config loads the preferences of the pathdata tool from a YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tdewolff/pathdata"
)

// SVGOutput mirrors the path data output preferences of an SVG editor.
type SVGOutput struct {
	NumericPrecision         int  `yaml:"numeric_precision"` // significant digits, 0 is exact
	FixedDecimals            int  `yaml:"fixed_decimals"`    // -1 disables
	MinimumExponent          int  `yaml:"minimum_exponent"`  // 0 disables
	AllowRelativeCoordinates bool `yaml:"allow_relative_coordinates"`
	ForceRepeatCommands      bool `yaml:"force_repeat_commands"`
	Minify                   bool `yaml:"minify"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
	File   string `yaml:"file"`
}

type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	SVGOutput     SVGOutput     `yaml:"svgoutput"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the defaults, which write exact and compact path data.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		SVGOutput: SVGOutput{
			NumericPrecision:         0,
			FixedDecimals:            -1,
			MinimumExponent:          0,
			AllowRelativeCoordinates: true,
		},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfig           = "PATHDATA_CONFIG"
	EnvNumericPrecision = "PATHDATA_NUMERIC_PRECISION"
	EnvAllowRelative    = "PATHDATA_ALLOW_RELATIVE"
	EnvForceRepeat      = "PATHDATA_FORCE_REPEAT"
	EnvLogLevel         = "PATHDATA_LOG_LEVEL"
	EnvLogFormat        = "PATHDATA_LOG_FORMAT"
	EnvLogFile          = "PATHDATA_LOG_FILE"
)

// Path returns the per-user config file path, or the path given by PATHDATA_CONFIG.
func Path() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvConfig)); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "pathdata", "config.yaml"), nil
}

// Load reads the config file at path over the defaults and applies environment overrides. A missing file is not an
// error, a malformed one is.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		} else if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Defaults(), fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the config as YAML to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func parseBool(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvNumericPrecision)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SVGOutput.NumericPrecision = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAllowRelative)); v != "" {
		cfg.SVGOutput.AllowRelativeCoordinates = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvForceRepeat)); v != "" {
		cfg.SVGOutput.ForceRepeatCommands = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// Options returns the writer options for the output preferences.
func (s SVGOutput) Options() pathdata.Options {
	o := pathdata.DefaultOptions
	o.Precision = s.NumericPrecision
	o.Decimals = s.FixedDecimals
	o.MinExp = s.MinimumExponent
	o.AllowRelative = s.AllowRelativeCoordinates
	o.ForceRepeatCommands = s.ForceRepeatCommands
	o.Minify = s.Minify
	return o
}
