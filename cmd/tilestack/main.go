// tilestack is a tile-matching puzzle: clear a stacked 6x6 board by picking
// pairs of identical tiles before the countdown runs out.
//
// Usage:
//
//	tilestack list               - List game variants
//	tilestack play [game]        - Play in the terminal
//	tilestack window [game]      - Play in a desktop window
//	tilestack history [game]     - Show recent results
//	tilestack serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.tilestack/results.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--sound             - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	// Import the game to register its variants
	_ "github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/platform/audio"
	"github.com/vovakirdan/tilestack/internal/platform/hooks"
	"github.com/vovakirdan/tilestack/internal/storage"
)

const defaultGame = "tilestack"

// The classic variant always starts at board.layers.
const difficultyUsage = "Difficulty preset for the tilestack variant: easy, medium, hard"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSound    bool

	// Shared by play and window
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilestack",
	Short: "Tile Stack - match pairs of tiles before time runs out",
	Long: `Tile Stack is a tile-matching puzzle. The board is a 6x6 grid with
two to four stacked layers; pick two identical tiles to clear them and
uncover the layer below. Clear everything within 360 seconds to win.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  window   - Play in a desktop window
  history  - View recent results
  serve    - Start SSH server for remote play

Examples:
  tilestack play
  tilestack play tilestack_classic
  tilestack window --assets ./assets
  tilestack history
  tilestack serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 30)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilestack/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameArg returns the variant named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// newLogger builds the process logger from --log-level and --log-file.
// The returned func closes the log file, if any.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tilestack",
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and applies --difficulty and --fps.
func loadGameConfig() (config.TileStackConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, nil
}

// app bundles what every front end needs around a game.
type app struct {
	cfg    config.TileStackConfig
	logger *log.Logger
	hooks  hooks.Hooks
	store  *storage.Store
	player *audio.Player
	close  func()
}

// setup loads config, logger, results store and sound for play/window.
// Startup failures print and exit 1; storage and sound failures only warn.
func setup() *app {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := &app{cfg: cfg, logger: logger}
	rt.hooks.Logger = logger

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "err", err)
		// Continue without storage - game still works
	} else {
		rt.store = store
		rt.hooks.Results = store
	}

	if flagSound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			rt.player = player
			rt.hooks.Sound = player
		}
	}

	rt.close = func() {
		if rt.player != nil {
			rt.player.Close()
		}
		if rt.store != nil {
			rt.store.Close()
		}
		closeLog()
	}
	return rt
}

// runtimeConfig returns the platform config for a screen size.
func (rt *app) runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rt.cfg.Timing.FPS,
		Seed:     flagSeed,
	}
}
