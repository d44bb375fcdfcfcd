package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyrun/internal/api"
	"github.com/vovakirdan/skyrun/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the leaderboard over HTTP",
	Long: `Start a read-only JSON API over the runs database.

Routes:
  GET /api/runs/top?limit=N     Best runs
  GET /api/runs/recent?limit=N  Latest runs
  GET /api/runs/{id}            One run
  GET /api/stats                Lifetime totals
  GET /ws/runs                  Websocket feed of new runs
  GET /healthz                  Liveness

Examples:
  skyrun api
  skyrun api --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "skyrun-api")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.NewServer(store, logger).ListenAndServe(ctx, flagAPIAddr)
}
