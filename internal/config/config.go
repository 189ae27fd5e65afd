// Package config loads heldkarp.toml: solver defaults and logging level for
// the heldkarp command.
//
// Lookup order is the --config flag, then $XDG_CONFIG_HOME/heldkarp/heldkarp.toml
// (~/.config when unset), then built-in defaults. A missing file at the
// implicit location is not an error; a missing file named explicitly is.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/heldkarp/tsp"
)

const (
	appName = "heldkarp"

	// FileName is the configuration file name inside the config directory.
	FileName = "heldkarp.toml"
)

// MaxMemoryLimitMB bounds memory_limit_mb so the byte budget cannot overflow.
const MaxMemoryLimitMB = 1 << 40

// ErrInvalid reports an unknown key or an out-of-range value.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors heldkarp.toml.
type Config struct {
	// Workers is the solver pool size; 0 uses every hardware thread.
	Workers int `toml:"workers"`

	// MaxVertices is the refusal ceiling; 0 uses tsp.DefaultMaxVertices.
	MaxVertices int `toml:"max_vertices"`

	// MemoryLimitMB caps the solver's up-front allocation in MiB; 0 is unlimited.
	MemoryLimitMB uint64 `toml:"memory_limit_mb"`

	// ReconstructTour prints an optimal tour next to its cost.
	ReconstructTour bool `toml:"reconstruct_tour"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxVertices: tsp.DefaultMaxVertices,
		LogLevel:    "info",
	}
}

// DefaultPath returns the implicit config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", appName, FileName), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses TOML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field range.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	}
	if c.MaxVertices < 0 || c.MaxVertices > tsp.HardMaxVertices {
		return fmt.Errorf("max_vertices=%d not in [0,%d]: %w", c.MaxVertices, tsp.HardMaxVertices, ErrInvalid)
	}
	if c.MemoryLimitMB > MaxMemoryLimitMB {
		return fmt.Errorf("memory_limit_mb=%d: %w", c.MemoryLimitMB, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalid)
	}

	return level, nil
}

// SolveOptions maps the file settings onto solver options.
func (c Config) SolveOptions() tsp.Options {
	return tsp.Options{
		Workers:         c.Workers,
		MaxVertices:     c.MaxVertices,
		MemoryLimit:     c.MemoryLimitMB << 20,
		ReconstructTour: c.ReconstructTour,
	}
}
