package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/platform/tui"
	"github.com/vovakirdan/tilestack/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tilestack SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own independent game session. Results are
stored per server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tilestack/host_key

Examples:
  tilestack serve                           # Listen on :23234 with auto-generated key
  tilestack serve --ssh :2222               # Listen on port 2222
  tilestack serve --game tilestack_classic  # Serve the classic variant
  tilestack serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", defaultGame, "Game variant every connection plays")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", difficultyUsage)
}

func runServe(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagServeGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagServeGame)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      flagServeGame,
		Game:        gameCfg,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("Starting tilestack SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
