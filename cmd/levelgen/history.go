package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/platform/tui"
	"github.com/vovakirdan/levelgen/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Browse previously generated levels",
	Long: `Show generated levels recorded in the history database.

In a terminal this opens an interactive table; with --plain (or when output
is not a terminal) it prints the most recent runs. Pass a run ID to show one
run in full.

Examples:
  levelgen history
  levelgen history --plain --limit 5
  levelgen history 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  levelgen history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to print in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print instead of opening the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg, _ := loadConfig()

	store, err := storage.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("History cleared.")

	case len(args) == 1:
		showRun(store, args[0])

	case flagHistoryPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		printRuns(store)

	default:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run:        %s\n", run.RunID)
	fmt.Printf("Date:       %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Difficulty: %s\n", config.Difficulty(run.Difficulty).Title())
	fmt.Printf("Seed:       %d\n", run.Seed)
	fmt.Printf("Layout:     %d waves, %d flags (every %d)\n", run.WaveCount, run.FlagCount, run.FlagInterval)
	fmt.Printf("Ambushes:   %d\n", run.AmbushCount)
	fmt.Printf("Roster:     %s\n", strings.Join(run.Roster, ", "))
	fmt.Printf("File:       %s\n", run.OutputPath)
	fmt.Println()
	fmt.Printf("Regenerate with: levelgen generate -d %s --seed %d\n", run.Difficulty, run.Seed)
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No levels generated yet.")
		fmt.Println()
		fmt.Println("Run 'levelgen generate' to make the first one!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-6s  %-20s  %s\n", "Date", "Tier", "Waves", "Flags", "Ambush", "Seed", "Run")
	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %-6s  %-20s  %s\n", "----", "----", "-----", "-----", "------", "----", "---")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-6s  %-5d  %-5d  %-6d  %-20d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			config.Difficulty(r.Difficulty).Title(),
			r.WaveCount, r.FlagCount, r.AmbushCount, r.Seed, r.RunID)
	}

	counts, err := store.CountByDifficulty()
	if err == nil {
		fmt.Println()
		parts := make([]string, 0, len(counts))
		for _, d := range config.Difficulties() {
			parts = append(parts, fmt.Sprintf("%s %d", d.Title(), counts[string(d)]))
		}
		fmt.Printf("Totals: %s\n", strings.Join(parts, ", "))
	}
}
