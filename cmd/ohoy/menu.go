package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/core"
	"github.com/vovakirdan/ohoy/internal/platform/tui"
	"github.com/vovakirdan/ohoy/internal/storage"
)

// runMenu shows the scenario picker. After a voyage ends the menu comes back.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open voyage log: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsLogbook {
			goBack, err := tui.RunLogbook(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		viewport := config.Size{Width: cfg.ScreenW, Height: cfg.ScreenH}
		fit := func(c *config.Config) { c.Viewport = viewport }
		if _, err := playScenario(result.ScenarioID, fit, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
