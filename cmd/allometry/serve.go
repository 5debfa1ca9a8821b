package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/allometry/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool interface over HTTP",
	Long: `Starts the HTTP tool server:

  POST /tool    execute a tool call
  GET  /schema  tool schema for agent registration
  GET  /health  liveness check
  GET  /metrics Prometheus metrics

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry("")
	if err != nil {
		return err
	}
	srv, err := server.New(reg, logger, cfg.Server.MaxBodyBytes)
	if err != nil {
		return err
	}

	sc := cfg.Server
	if flagAddr != "" {
		sc.Addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, sc); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
