package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyrun/internal/core"
	"github.com/vovakirdan/skyrun/internal/games/skyrun"
	"github.com/vovakirdan/skyrun/internal/platform/tui"
	"github.com/vovakirdan/skyrun/internal/storage"
)

var (
	flagSimSteps   int
	flagSimSave    bool
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Headless autopilot run",
	Long: `Run the game without a terminal, driven by a simple autopilot, and
print a summary. The same --seed always gives the same run.

Examples:
  skyrun sim --seed 42
  skyrun sim --seed 7 --difficulty hard --steps 20000
  skyrun sim --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 100000, "Stop after this many steps")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the database")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log game events to stderr")
}

func runSim(cmd *cobra.Command, _ []string) error {
	runner, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if flagSimVerbose {
		if logger, err = newLogger(os.Stderr, "skyrun-sim"); err != nil {
			return err
		}
	}

	var store *storage.Store
	if flagSimSave {
		if store, err = storage.Open(flagDBPath); err != nil {
			return fmt.Errorf("opening runs database: %w", err)
		}
		defer store.Close()
	}

	rt := runtimeConfig(80, 24)
	game := skyrun.New(runner, tui.RecorderFor(store), logger)
	game.Reset(rt)

	pilot := skyrun.NewAutopilot()
	state := game.State()
	steps := 0
	for ; steps < flagSimSteps && !state.Ready; steps++ {
		state = game.Step(pilot.Next(game.Loop().Session()))
	}

	s := game.Loop().Session()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:      %d\n", rt.Seed)
	fmt.Fprintf(out, "Outcome:   %s\n", outcome(state))
	fmt.Fprintf(out, "Score:     %s\n", humanize.Comma(int64(state.Score)))
	fmt.Fprintf(out, "Coins:     %d\n", state.Coins)
	fmt.Fprintf(out, "Steps:     %s\n", humanize.Comma(int64(s.Tick)))
	fmt.Fprintf(out, "Top speed: %.2f\n", s.TopSpeed)
	if flagSimSave && s.NewHigh {
		fmt.Fprintln(out, "New high score!")
	}
	return nil
}

func outcome(state core.GameState) string {
	if state.GameOver {
		return "crashed"
	}
	return "survived"
}
