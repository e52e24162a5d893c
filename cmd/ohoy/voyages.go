package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ohoy/internal/platform/tui"
	"github.com/vovakirdan/ohoy/internal/registry"
	"github.com/vovakirdan/ohoy/internal/storage"
)

var (
	flagVoyageLimit int
	flagBrowse      bool
	flagClear       bool
)

var voyagesCmd = &cobra.Command{
	Use:   "voyages [scenario]",
	Short: "Show the voyage log",
	Long: `Display recent voyages and per-scenario totals.

Examples:
  ohoy voyages
  ohoy voyages lagoon --limit 20
  ohoy voyages --browse
  ohoy voyages lagoon --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runVoyages,
}

func init() {
	voyagesCmd.Flags().IntVar(&flagVoyageLimit, "limit", 10, "Number of voyages to show")
	voyagesCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the log interactively")
	voyagesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every voyage of the scenario")
}

func runVoyages(cmd *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) > 0 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
			fmt.Fprintln(os.Stderr, "Run 'ohoy list' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening voyage log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if scenarioID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a scenario")
			os.Exit(1)
		}
		if err := store.ClearVoyages(scenarioID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Voyage log for %s cleared.\n", scenarioID)

	case flagBrowse:
		width, height := 100, 30
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunLogbook(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		if err := printVoyages(store, scenarioID, flagVoyageLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	foundStyle  = cellStyle.Foreground(lipgloss.Color("2"))
)

// printVoyages prints per-scenario totals and the recent voyages as tables.
func printVoyages(store *storage.Store, scenarioID string, limit int) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	voyages, err := store.RecentVoyages(scenarioID, limit)
	if err != nil {
		return err
	}

	if len(voyages) == 0 {
		fmt.Println("No voyages recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ohoy play' to set sail!")
		return nil
	}

	fmt.Println(statsTable(stats, scenarioID))
	fmt.Println()
	fmt.Println(voyageTable(voyages))
	return nil
}

func statsTable(stats map[string]*storage.ScenarioStats, only string) *table.Table {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		if only == "" || id == only {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Scenario", "Voyages", "Found", "Best", "Last played").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, id := range ids {
		st := stats[id]
		best := "-"
		if st.BestMoves > 0 {
			best = strconv.Itoa(st.BestMoves) + " moves"
		}
		t.Row(id, strconv.Itoa(st.Voyages), strconv.Itoa(st.Found), best, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return t
}

func voyageTable(voyages []storage.Voyage) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Date", "Scenario", "Outcome", "Moves", "Islands", "Clues", "Time", "Seed").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && row < len(voyages) && voyages[row].Found():
				return foundStyle
			}
			return cellStyle
		})

	for _, v := range voyages {
		t.Row(
			v.CreatedAt.Format("2006-01-02 15:04"),
			v.Scenario,
			v.Outcome,
			strconv.Itoa(v.Moves),
			fmt.Sprintf("%d/%d", v.Explored, v.Islands),
			strconv.Itoa(v.Clues),
			v.Duration.Truncate(time.Second).String(),
			strconv.FormatInt(v.Seed, 10),
		)
	}
	return t
}
