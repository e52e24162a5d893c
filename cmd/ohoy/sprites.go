package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ohoy/internal/assets"
	"github.com/vovakirdan/ohoy/internal/config"
	"github.com/vovakirdan/ohoy/internal/platform/tui"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites [dir]",
	Short: "Preview sprites",
	Long: `Print every island and ship sprite in color, with name (N) and
landmark ($) slots highlighted. Without a directory the built-in assets
(or --assets) are shown.

Examples:
  ohoy sprites
  ohoy sprites ./my-assets`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) {
	var fsys fs.FS
	switch {
	case len(args) > 0:
		fsys = os.DirFS(expandHome(args[0]))
	case flagAssets != "":
		fsys = os.DirFS(expandHome(flagAssets))
	default:
		fsys = assets.FS()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sea, _, _ := cfg.Palette()

	files, err := assets.SpriteFiles(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No sprites found.")
		return
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	failed := false
	for _, name := range files {
		spr, err := assets.LoadSprite(fsys, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		fmt.Println(nameStyle.Render(fmt.Sprintf("%s (%dx%d, %s)", name, spr.Width(), spr.Height(), spr.Color())))
		fmt.Println(tui.RenderScreen(tui.PreviewSprite(spr, sea)))
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}
