package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.Error(t, err)
	test.T(t, cfg, Defaults())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "svgoutput:\n  numeric_precision: 8\n  minimum_exponent: -8\n  allow_relative_coordinates: false\nlogging:\n  level: debug\n"
	test.Error(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	test.Error(t, err)
	test.T(t, cfg.SVGOutput.NumericPrecision, 8)
	test.T(t, cfg.SVGOutput.MinimumExponent, -8)
	test.T(t, cfg.SVGOutput.AllowRelativeCoordinates, false)
	test.T(t, cfg.SVGOutput.FixedDecimals, -1) // kept from defaults
	test.T(t, cfg.Logging.Level, "debug")
	test.T(t, cfg.Logging.Format, "console")

	o := cfg.SVGOutput.Options()
	test.T(t, o.Precision, 8)
	test.T(t, o.MinExp, -8)
	test.T(t, o.AllowRelative, false)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	test.Error(t, os.WriteFile(path, []byte("svgoutput: [1, 2"), 0o644))

	_, err := Load(path)
	test.That(t, err != nil, "expected error for malformed YAML")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvNumericPrecision, "5")
	t.Setenv(EnvForceRepeat, "yes")
	t.Setenv(EnvLogFormat, "JSON")

	cfg, err := Load("")
	test.Error(t, err)
	test.T(t, cfg.SVGOutput.NumericPrecision, 5)
	test.T(t, cfg.SVGOutput.ForceRepeatCommands, true)
	test.T(t, cfg.Logging.Format, "json")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.SVGOutput.Minify = true
	cfg.SVGOutput.FixedDecimals = 3
	test.Error(t, Save(path, cfg))

	loaded, err := Load(path)
	test.Error(t, err)
	test.T(t, loaded, cfg)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/pathdata.yaml")
	path, err := Path()
	test.Error(t, err)
	test.String(t, path, "/tmp/pathdata.yaml")
}
