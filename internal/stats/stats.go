// Package stats persists aggregate solve-outcome counts across driver
// invocations, the direct analogue of the original terminal suite's
// high-score tracking applied to solver outcomes instead of game scores.
// It never persists search state (the transposition cache or the
// seen-card-stacks set): that scope ends with the process, per spec.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/kflex/klondike-solver/internal/envelope"
)

// Totals holds lifetime outcome counts.
type Totals struct {
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Timeouts    int    `json:"timeouts"`
	LastRunDate string `json:"last_run_date,omitempty"`
}

// Store manages stats persistence.
type Store struct {
	path   string
	Totals Totals
}

// Load reads stats from the default location,
// ~/.klondike-solver/stats.json.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads stats from a specific path. If path is empty, uses the
// default location. A missing file is not an error: a zero Totals is
// returned instead.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{}, err
		}
		path = filepath.Join(home, ".klondike-solver", "stats.json")
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Totals); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the stats to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Totals, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record folds one solve outcome into the lifetime totals.
func (s *Store) Record(status envelope.Status) {
	switch status {
	case envelope.StatusWin:
		s.Totals.Wins++
	case envelope.StatusLose:
		s.Totals.Losses++
	case envelope.StatusTimeout:
		s.Totals.Timeouts++
	}
	s.Totals.LastRunDate = time.Now().Format("2006-01-02")
}
