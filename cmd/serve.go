package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bridgeswap/pkg/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the swap API over HTTP and WebSocket",
	Long: `Run an HTTP server exposing the swap simulator: network catalog,
quote creation, swap status, history and portfolio endpoints, plus a
WebSocket feed broadcasting new transactions and stats.

Endpoints:
  GET  /api/v1/networks
  GET  /api/v1/history
  GET  /api/v1/portfolio
  POST /api/v1/quote
  GET  /api/v1/quote/{id}
  GET  /api/v1/status/{id}
  GET  /ws`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (defaults to the configured address)")
}

func runServe(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, store, calc := app()

	logCfg := zap.NewProductionConfig()
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := logCfg.Build()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer log.Sync()

	addr := listenAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(log, store, calc, server.WithStageInterval(cfg.StageInterval))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
