package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/generator"
	"github.com/vovakirdan/levelgen/internal/pipeline"
	"github.com/vovakirdan/levelgen/internal/platform/tui"
)

var (
	flagDifficulty string
	flagOutput     string
	flagDryRun     bool
	flagQuiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level file",
	Long: `Generate a level for the given difficulty and write it to disk.

Difficulty options:
  easy   - 10-12 waves, 1-2 flags
  medium - 12-18 waves, 2-3 flags
  hard   - 16-20 waves, 3-5 flags

The same --seed with the same config always produces the same file.

Examples:
  levelgen generate
  levelgen generate --difficulty hard
  levelgen generate --seed 1234 -o ./out/Future6.json
  levelgen generate --dry-run > level.json`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "medium", "Difficulty: easy, medium, hard")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default from config)")
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the level to stdout instead of writing it")
	generateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not print the summary")
}

func runGenerate(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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

	out, err := pipe.Run(pipeline.Request{
		Difficulty: difficulty,
		Seed:       flagSeed,
		OutputPath: flagOutput,
		DryRun:     flagDryRun,
	})
	if err != nil {
		var cfgErr generator.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Error: configuration problem %v\n", cfgErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}

	summary := os.Stdout
	if flagDryRun {
		os.Stdout.Write(out.Document)
		fmt.Fprintln(os.Stdout)
		summary = os.Stderr
	}
	if !flagQuiet {
		fmt.Fprintln(summary, tui.RenderSummary(out))
	}
}
