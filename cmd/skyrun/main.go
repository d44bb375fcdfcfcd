// skyrun is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	skyrun play              - Play a run
//	skyrun scores            - Print the best runs
//	skyrun board             - Interactive scoreboard
//	skyrun serve             - Start SSH server for remote play
//	skyrun api               - Serve the leaderboard over HTTP
//	skyrun sim               - Headless autopilot run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skyrun/skyrun.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyrun/internal/storage"
)

// Environment variables that provide flag defaults. A .env file in the
// working directory is read first.
const (
	envDB       = "SKYRUN_DB"
	envLogLevel = "SKYRUN_LOG_LEVEL"
	envAPIAddr  = "SKYRUN_API_ADDR"
	envSSHAddr  = "SKYRUN_SSH_ADDR"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyrun",
	Short: "SkyRun - an endless runner in your terminal",
	Long: `SkyRun is a side-scrolling endless runner. Jump over crates, slide
under lamps, grab coins, shields, boosters and power-ups, and see how far
you get before something knocks you down.

Available commands:
  play     - Play a run
  scores   - Print the best runs
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play
  api      - Serve the leaderboard over HTTP
  sim      - Headless autopilot run

Examples:
  skyrun play
  skyrun play --difficulty hard
  skyrun serve --ssh :2222
  skyrun sim --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (steps per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: no log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(simCmd)
}

// loadEnv reads .env and lets the environment fill flags the user did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	envFlag(cmd, "db", envDB, &flagDBPath)
	envFlag(cmd, "log-level", envLogLevel, &flagLogLevel)
	if cmd == serveCmd {
		envFlag(cmd, "ssh", envSSHAddr, &flagSSHAddr)
	}
	if cmd == apiCmd {
		envFlag(cmd, "addr", envAPIAddr, &flagAPIAddr)
	}
	return nil
}

func envFlag(cmd *cobra.Command, name, env string, dst *string) {
	if cmd.Flags().Changed(name) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
