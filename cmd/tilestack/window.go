package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilestack/internal/platform/gui"
	"github.com/vovakirdan/tilestack/internal/registry"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a 600x600 window with 100px tiles.

Pattern art is read from --assets (pattern_0.png ... pattern_6.png, one per
configured pattern). A missing or unreadable file aborts before the window
opens. Without --assets, simple generated patterns are used.

Controls:
  Click          - Pick the top tile / press a menu button
  Arrows/HJKL    - Move the cursor
  Space/Enter    - Pick the tile under the cursor
  Y              - Copy the board to the clipboard
  Q/Esc          - Quit

Examples:
  tilestack window
  tilestack window --assets ./assets
  tilestack window --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", difficultyUsage)
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory holding pattern_N.png images")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilestack list' to see available games.")
		os.Exit(1)
	}

	rt := setup()
	fail := func(format string, a ...any) {
		rt.close()
		fmt.Fprintf(os.Stderr, format, a...)
		os.Exit(1)
	}

	var patterns []image.Image
	if flagAssets != "" {
		var err error
		patterns, err = gui.LoadPatterns(flagAssets, len(rt.cfg.Patterns), rt.cfg.Window.TileSize)
		if err != nil {
			fail("Error loading assets: %v\n", err)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := gui.New(gameID, rt.cfg, gui.Options{
		Seed:      seed,
		Patterns:  patterns,
		Hooks:     rt.hooks,
		Logger:    rt.logger,
		Clipboard: true,
	})
	if err != nil {
		fail("Error creating game: %v\n", err)
	}

	title := "Tile Stack"
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	runErr := gui.Run(game, title)
	rt.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
