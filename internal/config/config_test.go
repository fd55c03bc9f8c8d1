package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Config != DefaultConfig() {
		t.Errorf("Config = %+v, want defaults %+v", s.Config, DefaultConfig())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	s.Config.DrawSize = 1
	s.Config.TableauSize = 4
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after Save: %v", err)
	}
	if reloaded.Config != s.Config {
		t.Errorf("reloaded = %+v, want %+v", reloaded.Config, s.Config)
	}
}

func TestNormalizeClampsOutOfRangeValues(t *testing.T) {
	s := &Store{Config: Config{DrawSize: 0, TableauSize: -3}}
	s.normalize()
	want := DefaultConfig()
	if s.Config.DrawSize != want.DrawSize || s.Config.TableauSize != want.TableauSize {
		t.Errorf("normalize() = %+v, want %+v", s.Config, want)
	}
}
