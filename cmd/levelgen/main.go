// levelgen generates Plants vs. Zombies 2 levels from a difficulty tier.
//
// Usage:
//
//	levelgen generate        - Generate a level file
//	levelgen menu            - Pick a difficulty interactively
//	levelgen history         - Browse previously generated levels
//	levelgen catalog         - List the enemy catalog
//	levelgen serve           - Start SSH server for remote generation
//	levelgen config init     - Write the default levelgen.yaml
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.levelgen, ./configs)
//	--seed <value>      - RNG seed for reproducible levels (0 = time based)
//	--db <path>         - History database path (default from config)
//	--no-history        - Do not record runs
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelgen/internal/config"
	"github.com/vovakirdan/levelgen/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagSeed       uint64
	flagDBPath     string
	flagNoHistory  bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelgen",
	Short: "levelgen - Procedural PvZ2 level generator",
	Long: `levelgen builds a playable Plants vs. Zombies 2 level from a difficulty
tier: it plans waves and flags, picks an enemy roster, spends each wave's
point budget and sprinkles in ambush events.

Available commands:
  generate - Generate a level file
  menu     - Interactive difficulty picker
  history  - Browse generated levels
  catalog  - Show enemy categories and costs
  serve    - Start SSH server for remote generation
  config   - Show or create levelgen.yaml

Examples:
  levelgen generate --difficulty hard
  levelgen generate --seed 42 -o levels/Future6.json
  levelgen menu
  levelgen serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to levelgen.yaml")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record generated levels")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and builds a logger at --log-level.
// Failures are fatal.
func loadConfig() (config.Config, *log.Logger) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "levelgen",
		Level:           level,
	})

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.HistoryDB = flagDBPath
	}
	return cfg, logger
}

// openHistory opens the history store unless disabled. A store that cannot
// be opened is reported and skipped.
func openHistory(cfg config.Config) *storage.Store {
	if flagNoHistory {
		return nil
	}
	store, err := storage.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}
