// Package config loads numkit.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"numkit/internal/trace"
)

// FileName is the config file searched for from the working directory up.
const FileName = "numkit.toml"

// Config is the decoded numkit.toml. Path and Root are empty when no file
// was found and defaults are in effect.
type Config struct {
	Path string `toml:"-"`
	Root string `toml:"-"`

	Store  StoreConfig  `toml:"store"`
	Prime  PrimeConfig  `toml:"prime"`
	Trace  TraceConfig  `toml:"trace"`
	Output OutputConfig `toml:"output"`
}

type StoreConfig struct {
	Path      string `toml:"path"`
	CacheSize int    `toml:"cache_size"`
}

type PrimeConfig struct {
	Rounds        int  `toml:"rounds"`
	Jobs          int  `toml:"jobs"`
	Deterministic bool `toml:"deterministic"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

type OutputConfig struct {
	Color string `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Store:  StoreConfig{Path: filepath.Join(".numkit", "vars"), CacheSize: 256},
		Prime:  PrimeConfig{Rounds: 20, Deterministic: true},
		Trace:  TraceConfig{Level: "off", Output: "-"},
		Output: OutputConfig{Color: "auto"},
	}
}

// Find walks up from startDir looking for numkit.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover loads the nearest numkit.toml above startDir, or defaults.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, err
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("[store].path must not be empty")
	}
	if c.Store.CacheSize <= 0 {
		return fmt.Errorf("[store].cache_size must be positive, got %d", c.Store.CacheSize)
	}
	if c.Prime.Rounds <= 0 {
		return fmt.Errorf("[prime].rounds must be positive, got %d", c.Prime.Rounds)
	}
	if c.Prime.Jobs < 0 {
		return fmt.Errorf("[prime].jobs must not be negative, got %d", c.Prime.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color)
	}
	return nil
}

// StorePath resolves [store].path against the config file's directory.
// Without a config file it is resolved against the working directory.
func (c Config) StorePath() string {
	if filepath.IsAbs(c.Store.Path) || c.Root == "" {
		return c.Store.Path
	}
	return filepath.Join(c.Root, c.Store.Path)
}
