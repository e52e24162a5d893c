package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/game"
	"github.com/vovakirdan/ohoy/internal/platform"
	"github.com/vovakirdan/ohoy/internal/platform/tcellscreen"
	"github.com/vovakirdan/ohoy/internal/platform/tui"
	"github.com/vovakirdan/ohoy/internal/storage"
)

const defaultScenario = "ascii-sea"

var (
	flagBackend string
	flagFit     bool
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Set sail",
	Long: `Start a voyage in the given scenario (default: ascii-sea).

Controls:
  Arrows     - Sail
  P          - Put into port at a nearby island
  J          - Open the journal
  Enter      - Close the journal / keep sailing
  Esc        - Ask to abandon the voyage
  Ctrl+S     - Save a screenshot to ~/.ohoy/screenshots
  Ctrl+C     - Quit immediately

Backends:
  ansi   - Bubble Tea input with direct ANSI output (default)
  tcell  - tcell for both input and output

Examples:
  ohoy play
  ohoy play lagoon --fit
  ohoy play --seed 42
  ohoy play --backend tcell
  ohoy play --config ./my-sea.yaml --assets ./my-assets`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "ansi", "Terminal backend: ansi or tcell")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the viewport to the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	scenarioID := defaultScenario
	if len(args) > 0 {
		scenarioID = args[0]
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open voyage log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open voyage log: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	sum, err := playScenario(scenarioID, fitViewport, store, logger)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSummary(sum)
}

// fitViewport sizes the viewport to the terminal when --fit is set.
func fitViewport(cfg *config.Config) {
	if !flagFit {
		return
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.Viewport = config.Size{Width: w, Height: h}
	}
}

// playScenario generates a sea for the scenario and sails it until the
// voyage ends. adjust may resize the viewport before the scenario applies.
func playScenario(scenarioID string, adjust func(*config.Config), store *storage.Store, logger *log.Logger) (game.Summary, error) {
	sc, cfg, err := loadScenario(scenarioID, adjust)
	if err != nil {
		return game.Summary{}, err
	}
	cat, err := loadCatalog()
	if err != nil {
		return game.Summary{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("setting sail", "scenario", sc.ID(), "seed", seed,
		"world", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height),
		"viewport", fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height))

	sess, err := game.New(cfg, cat, rand.New(rand.NewSource(seed)), game.OptionsFromConfig(cfg, logger))
	if err != nil {
		return game.Summary{}, err
	}

	rec := platform.NewRecorder(store, sc.ID(), seed, logger)
	pace := time.Duration(cfg.Journal.PaceMS) * time.Millisecond

	switch flagBackend {
	case "ansi":
		err = tui.Run(sess, tui.Options{
			Runtime:  core.RuntimeConfig{ScreenW: cfg.Viewport.Width, ScreenH: cfg.Viewport.Height, Seed: seed},
			Pace:     pace,
			Recorder: rec,
			Logger:   logger,
		})
	case "tcell":
		err = tcellscreen.Play(sess, tcellscreen.Options{
			Width:    cfg.Viewport.Width,
			Height:   cfg.Viewport.Height,
			Pace:     pace,
			Hint:     tui.DefaultKeyMap().Hint(),
			Recorder: rec,
			Logger:   logger,
		})
	default:
		err = fmt.Errorf("unknown backend %q (expected ansi or tcell)", flagBackend)
	}
	return sess.Summary(), err
}

// printSummary reports the voyage after the terminal is restored.
func printSummary(sum game.Summary) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if sum.Found {
		fmt.Println(title.Render(fmt.Sprintf("Treasure found on %s!", sum.Goal)))
	} else {
		fmt.Println(title.Render("The voyage was abandoned."))
	}
	fmt.Println(dim.Render(fmt.Sprintf("%d moves (%d into land), %d of %d islands explored, %d clues, %d cells charted",
		sum.Moves, sum.Rejected, sum.Explored, sum.Islands, sum.Clues, sum.Revealed)))
}
