package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyrun/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Display the top runs and lifetime totals.

Examples:
  skyrun scores
  skyrun scores --limit 25
  skyrun scores --recent`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	title := "High Scores"
	list := store.TopRuns
	if flagScoresRecent {
		title = "Recent Runs"
		list = store.RecentRuns
	}

	runs, err := list(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "SkyRun - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'skyrun play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Coins", "Steps", "When")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8s  %-6d  %-8s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Coins, humanize.Comma(int64(r.Steps)), humanize.Time(r.CreatedAt))
	}

	st, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s   Coins: %s   Deaths: %s   Runs: %s   Avg: %.0f\n",
		humanize.Comma(int64(st.HighScore)),
		humanize.Comma(int64(st.TotalCoins)),
		humanize.Comma(int64(st.Deaths)),
		humanize.Comma(int64(st.RunsPlayed)),
		st.AvgScore,
	)
	return nil
}
