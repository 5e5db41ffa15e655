package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dashboards over a JSON HTTP API",
	Long: `Load the stored dataset once and serve it over HTTP:

  GET  /healthz
  GET  /api/teams
  GET  /api/teams/{team}/options
  GET  /api/dashboard?team=&tournament=&opponent=&from=&to=
  POST /api/dashboard  {"team": "A" | ["A", "B"], "tournaments": [...], "opponents": [...], "years": [from, to]}

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $FOOTSTATS_HTTP_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	b, err := loadBuilder()
	if err != nil {
		return err
	}
	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(b, logger.With("component", "http"), server.Options{
		Addr:         addr,
		CORSOrigins:  cfg.CORSOrigins,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	logger.Info("dataset ready", "teams", len(b.Store.Teams()), "default_team", b.DefaultTeam())
	return srv.ListenAndServe(ctx)
}
