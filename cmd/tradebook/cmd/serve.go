package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal over HTTP",
	Long: `Start a JSON API over the configured journal.

Endpoints:
  GET  /healthz
  GET  /api/v1/trades
  POST /api/v1/trades
  GET  /api/v1/trades/:seq
  GET  /api/v1/balance
  GET  /api/v1/analysis   (?format=org for the text report)

Example:
  tradebook serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, cfg, log, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, svc, log).Run(ctx)
}
