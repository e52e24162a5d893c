// Package platform holds what every terminal backend shares: recording
// finished voyages and saving screenshots.
package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/game"
	"github.com/vovakirdan/ohoy/internal/storage"
)

// Recorder writes a session's outcome to the voyage log exactly once.
type Recorder struct {
	Store    *storage.Store // nil disables recording
	Scenario string
	Seed     int64
	Logger   *log.Logger

	started time.Time
	saved   bool
}

// NewRecorder starts timing a voyage.
func NewRecorder(store *storage.Store, scenario string, seed int64, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		Store:    store,
		Scenario: scenario,
		Seed:     seed,
		Logger:   logger,
		started:  time.Now(),
	}
}

// Voyage builds the log entry for a summary.
func (r *Recorder) Voyage(sum game.Summary) storage.Voyage {
	outcome := storage.OutcomeAbandoned
	if sum.Found {
		outcome = storage.OutcomeFound
	}
	return storage.Voyage{
		Scenario: r.Scenario,
		Seed:     r.Seed,
		Outcome:  outcome,
		Goal:     sum.Goal,
		Moves:    sum.Moves,
		Rejected: sum.Rejected,
		Explored: sum.Explored,
		Islands:  sum.Islands,
		Revealed: sum.Revealed,
		Clues:    sum.Clues,
		Duration: time.Since(r.started).Round(time.Millisecond),
	}
}

// Record saves the voyage unless it was already saved or nothing happened.
// Failures are logged; the game ends regardless.
func (r *Recorder) Record(sum game.Summary) {
	if r.saved || r.Store == nil {
		return
	}
	r.saved = true
	if sum.Moves == 0 && sum.Ports == 0 {
		r.Logger.Debug("empty voyage not recorded")
		return
	}
	id, err := r.Store.SaveVoyage(r.Voyage(sum))
	if err != nil {
		r.Logger.Error("cannot record voyage", "err", err)
		return
	}
	r.Logger.Info("voyage recorded", "id", id, "found", sum.Found, "moves", sum.Moves)
}

// ScreenshotDir is where screenshots go by default.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".ohoy", "screenshots")
}

// SaveScreenshot writes the plain text of s to dir and returns the file path.
func SaveScreenshot(dir, scenario string, s *core.Screen) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("platform: create screenshot dir: %w", err)
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", scenario, timestamp))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("platform: write screenshot: %w", err)
	}
	return path, nil
}
