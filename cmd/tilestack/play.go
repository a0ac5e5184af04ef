package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilestack/internal/platform/tui"
	"github.com/vovakirdan/tilestack/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The game defaults to "tilestack", which
opens the difficulty menu; "tilestack_classic" starts a 3-layer board right
away and exits after the round.

Controls:
  Click          - Pick the top tile under the mouse / choose a menu item
  Arrows/HJKL    - Move the board or menu cursor
  Space/Enter    - Pick the tile under the cursor / choose a menu item
  Ctrl+S         - Save a text screenshot
  Ctrl+Y         - Copy the board to the clipboard
  Q/Esc/Ctrl+C   - Quit

Difficulty options (tilestack only; skip the first menu):
  easy   - 2 layers
  medium - 3 layers
  hard   - 4 layers

Examples:
  tilestack play
  tilestack play tilestack_classic
  tilestack play --difficulty hard
  tilestack play --config ./my-tilestack.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", difficultyUsage)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilestack list' to see available games.")
		os.Exit(1)
	}

	rt := setup()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		rt.close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if c, ok := game.(registry.Configurable); ok {
		c.Configure(rt.cfg)
	}

	runErr := tui.Run(game, rt.runtimeConfig(width, height), tui.Options{
		Hooks:     rt.hooks,
		Logger:    rt.logger,
		Clipboard: true,
	})

	// Close store before potential exit
	rt.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
