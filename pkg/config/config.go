// Package config loads and validates plotfence configuration.
//
// Configuration comes from an optional TOML file merged over built-in
// defaults. CLI flags override file values; merging happens in the CLI
// layer, after which the Config is treated as immutable for the whole
// document pass.
package config

import (
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/plotfence/plotfence/pkg/errors"
)

// DefaultFilename is the configuration file searched for in the working
// directory when no explicit path is given.
const DefaultFilename = ".plotfence.toml"

// Duration wraps time.Duration for TOML decoding from strings like "30s".
// An empty string decodes to zero, meaning no limit.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte(""), nil
	}
	return []byte(d.Duration.String()), nil
}

// ToolkitConfig holds per-toolkit overrides from a [toolkit] table.
type ToolkitConfig struct {
	// Executable overrides the default interpreter name or path.
	Executable string `toml:"executable"`

	// Preamble is a path to a file whose contents are prepended to every
	// script rendered with this toolkit.
	Preamble string `toml:"preamble"`
}

// Config holds all settings for a document pass.
type Config struct {
	// Directory is the default output directory for figures and scripts.
	Directory string `toml:"directory"`

	// Format is the default output format tag (e.g. "png", "svg").
	Format string `toml:"format"`

	// DPI is the default raster resolution.
	DPI int `toml:"dpi"`

	// Source controls whether a link to the figure's source script is
	// inserted after each figure.
	Source bool `toml:"source"`

	// Jobs is the worker pool size for concurrent rendering.
	Jobs int `toml:"jobs"`

	// Timeout is the per-render budget. Zero means no limit.
	Timeout Duration `toml:"timeout"`

	// Dependencies lists extra files every figure depends on. Their
	// content participates in fingerprinting, so touching one of them
	// invalidates all cached figures.
	Dependencies []string `toml:"dependencies"`

	// Per-toolkit override sections, keyed by toolkit tag.
	Matplotlib ToolkitConfig `toml:"matplotlib"`
	Octave     ToolkitConfig `toml:"octave"`
	Gnuplot    ToolkitConfig `toml:"gnuplot"`
	Graphviz   ToolkitConfig `toml:"graphviz"`
	GGPlot2    ToolkitConfig `toml:"ggplot2"`
	D2         ToolkitConfig `toml:"d2"`

	// Force bypasses the artifact cache. Set from the --force flag,
	// never from the file.
	Force bool `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Directory: "plotfence-output",
		Format:    "png",
		DPI:       80,
		Jobs:      runtime.NumCPU(),
	}
}

// LoadFile reads and validates a configuration file. Values not present in
// the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "failed to read config file: %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse %s", path)
	}

	// jobs = 0 in the file falls back to the CPU count.
	if cfg.Jobs == 0 {
		cfg.Jobs = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load resolves configuration for a run. An explicit path must exist;
// otherwise DefaultFilename is used when present, and built-in defaults
// when it is not.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}
	if _, err := os.Stat(DefaultFilename); err == nil {
		return LoadFile(DefaultFilename)
	}
	return Default(), nil
}

// Validate checks settings that do not depend on the toolkit registry.
// Format strings are validated by pkg/toolkit when resolved.
func (c *Config) Validate() error {
	if err := errors.ValidateDirectory(c.Directory); err != nil {
		return err
	}
	if err := errors.ValidateDPI(c.DPI); err != nil {
		return err
	}
	if err := errors.ValidateJobs(c.Jobs); err != nil {
		return err
	}
	if c.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout cannot be negative")
	}
	return nil
}

// Toolkit returns the override section for the given toolkit tag.
// Unknown tags return a zero value.
func (c *Config) Toolkit(tag string) ToolkitConfig {
	switch tag {
	case "matplotlib":
		return c.Matplotlib
	case "octave":
		return c.Octave
	case "gnuplot":
		return c.Gnuplot
	case "graphviz":
		return c.Graphviz
	case "ggplot2":
		return c.GGPlot2
	case "d2":
		return c.D2
	}
	return ToolkitConfig{}
}
