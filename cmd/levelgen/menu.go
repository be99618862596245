package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/levelgen/internal/pipeline"
	"github.com/vovakirdan/levelgen/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Start the interactive difficulty picker.

Use arrow keys or j/k to choose a tier (Medium is preselected) and Enter to
generate. The summary screen lets you regenerate or go back.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Generate level
  R            - Regenerate with a fresh seed
  Tab          - Browse history
  Q            - Quit

Examples:
  levelgen menu
  levelgen menu --seed 42
  levelgen menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, logger := loadConfig()

	store := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	pipe, err := pipeline.New(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	last, err := tui.RunSession(pipe, store, pipeline.Request{Seed: flagSeed}, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if last != nil {
		fmt.Printf("Last level: %s (seed %d)\n", last.Path, last.Seed)
	}
}
