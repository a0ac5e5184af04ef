package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilestack/internal/platform/tui"
	"github.com/vovakirdan/tilestack/internal/registry"
	"github.com/vovakirdan/tilestack/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recent results",
	Long: `Display recent rounds (won or timed out) for a game variant.

In a terminal the results open in an interactive table; Tab switches
variants. When output is piped, or with --plain, a text table is printed.

Examples:
  tilestack history
  tilestack history tilestack_classic --plain
  tilestack history --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of results to print in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain text table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the variant's results")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilestack list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printHistory(store, gameID, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printHistory writes a plain results table to stdout.
func printHistory(store *storage.Store, gameID string, limit int) error {
	results, err := store.RecentResults(gameID, limit)
	if err != nil {
		return err
	}
	summary, err := store.Summary(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s\n", gameID)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilestack play %s' to make history!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-5s  %s\n", "#", "Result", "Layers", "Time", "Left", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-5s  %s\n", "-", "------", "------", "----", "----", "----")
	for i, r := range results {
		outcome := "Won"
		if r.Outcome == storage.OutcomeTimedOut {
			outcome = "Time's up"
		}
		fmt.Printf("  %-4d  %-10s  %-6d  %-6s  %-5d  %s\n",
			i+1, outcome, r.Layers, fmt.Sprintf("%ds", r.ElapsedSecs), r.TilesLeft,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println(tui.SummaryLine(summary))
	return nil
}
