// Package config persists default solver rules to disk, in the same
// load/normalize/save idiom the original terminal suite used for its
// per-user settings.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kflex/klondike-solver/internal/klondike"
)

// Config stores the default rules used when the CLI does not override
// them with flags.
type Config struct {
	DrawSize    int `json:"draw_size"`
	TableauSize int `json:"tableau_size"`
}

// DefaultConfig returns the conventional Klondike configuration.
func DefaultConfig() Config {
	d := klondike.DefaultRules()
	return Config{DrawSize: d.DrawSize, TableauSize: d.TableauSize}
}

// Rules converts Config to klondike.Rules, normalizing out-of-range
// values.
func (c Config) Rules() klondike.Rules {
	return klondike.Rules{DrawSize: c.DrawSize, TableauSize: c.TableauSize}.Normalize()
}

// Store manages config persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads config from the default location,
// ~/.klondike-solver/config.json.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads config from a specific path. If path is empty, uses the
// default location. A missing file is not an error: the defaults are
// returned instead.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".klondike-solver", "config.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize ensures config values are safe to deal with, falling back to
// defaults for anything out of range.
func (s *Store) normalize() {
	r := s.Config.Rules()
	s.Config.DrawSize = r.DrawSize
	s.Config.TableauSize = r.TableauSize
}
