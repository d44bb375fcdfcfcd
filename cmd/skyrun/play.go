package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyrun/internal/games/skyrun"
	"github.com/vovakirdan/skyrun/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a SkyRun run in the terminal.

Controls:
  Space/Up/W   - Jump (press again mid-air to double jump)
  Down/S       - Slide
  Left/Right   - Move
  P/Esc        - Pause
  R            - Replay (after game over)
  B            - Scoreboard (when paused or after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, longer shields and boosters
  normal - Default start speed
  hard   - Fast start, shorter buffs, fewer coins
  fixed  - No acceleration

Examples:
  skyrun play
  skyrun play --difficulty easy
  skyrun play --seed 42
  skyrun play --config ./my-skyrun.yaml --log-file skyrun.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	runner, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	game := skyrun.New(runner, tui.RecorderFor(store), logger)
	return tui.RunSession(game, store, runtimeConfig(width, height))
}
