package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/levelgen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagOutDir      string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the levelgen SSH server",
	Long: `Start an SSH server that hands every connection the difficulty picker.

Each generated level is written to the output directory as <run-id>.json and
recorded in the shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.levelgen/host_key

Examples:
  levelgen serve                           # Listen on :23234 with auto-generated key
  levelgen serve --ssh :2222               # Listen on port 2222
  levelgen serve --out-dir /srv/levels     # Write levels elsewhere

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagOutDir, "out-dir", def.OutputDir, "Directory for generated levels")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	genCfg, logger := loadConfig()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      genCfg.HistoryDB,
		OutputDir:   flagOutDir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		LogLevel:    logger.GetLevel(),
	}
	// Session start/end is always logged.
	if cfg.LogLevel > log.InfoLevel {
		cfg.LogLevel = log.InfoLevel
	}

	server, err := tui.NewSSHServer(cfg, genCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting levelgen SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
