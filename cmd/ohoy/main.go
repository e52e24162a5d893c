// ohoy is a terminal exploration game: sail a fogged ASCII sea, port at
// islands, gather clues and find the treasure island.
//
// Usage:
//
//	ohoy                     - Pick a scenario from a menu
//	ohoy list                - List available scenarios
//	ohoy play [scenario]     - Set sail (default: ascii-sea)
//	ohoy voyages [scenario]  - Show the voyage log
//	ohoy sprites [dir]       - Preview island and ship sprites
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for a reproducible sea
//	--db <path>      - Set voyage log path (default: ~/.ohoy/voyages.db)
//	--config <path>  - Use a custom ohoy.yaml
//	--assets <dir>   - Load sprites, landmarks and names from a directory
//	--log <path>     - Write the game log here (default: ~/.ohoy/ohoy.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ohoy/internal/assets"
	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/registry"
	_ "github.com/vovakirdan/ohoy/internal/scenarios" // register built-in scenarios
	"github.com/vovakirdan/ohoy/internal/world"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagAssets   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ohoy",
	Short: "Ohoy - sail the ASCII sea in your terminal",
	Long: `Ohoy is a terminal exploration game. Sail a fogged sea, put into port
at islands, collect clues in your journal and find the treasure island.

Available commands:
  list     - Show all scenarios
  play     - Set sail in a scenario
  voyages  - Show the voyage log
  sprites  - Preview sprites

Run without a command to pick a scenario from a menu.

Examples:
  ohoy
  ohoy play
  ohoy play lagoon --fit
  ohoy play --seed 42 --backend tcell
  ohoy voyages --browse`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ohoy/voyages.db", "Path to voyage log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom ohoy.yaml")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprites, landmarks and names.txt")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.ohoy/ohoy.log", "Path to the game log")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(voyagesCmd)
	rootCmd.AddCommand(spritesCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// newLogger opens the game log. The terminal belongs to the renderer while
// sailing, so nothing is logged to it. The returned func closes the file.
func newLogger() (*log.Logger, func(), error) {
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ohoy",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, func() { f.Close() }, nil
}

// loadCatalog loads sprites, landmarks and names from --assets or the
// embedded defaults.
func loadCatalog() (world.Catalog, error) {
	if flagAssets != "" {
		return assets.Dir(expandHome(flagAssets))
	}
	return assets.Default()
}

// loadScenario resolves a scenario and the configuration it sails with.
// adjust runs on the loaded configuration before the scenario shapes it.
func loadScenario(id string, adjust func(*config.Config)) (registry.Scenario, config.Config, error) {
	sc, err := registry.Create(id)
	if err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, config.Config{}, err
	}
	if adjust != nil {
		adjust(&cfg)
	}
	cfg = sc.Configure(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, config.Config{}, err
	}
	return sc, cfg, nil
}
