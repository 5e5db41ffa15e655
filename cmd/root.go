package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/config"
	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/logging"
	"github.com/pable/go-football-stats/internal/storage"
)

var (
	dbPath    string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger = logging.Default()
)

var rootCmd = &cobra.Command{
	Use:   "footstats",
	Short: "International football results dashboard",
	Long: `Import the international football results dataset into SQLite and explore a
team's record: win/loss/draw stats, top scorers, per-year trend, tournaments,
recent matches and results by host country, from the terminal or over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (default $FOOTSTATS_DB or ~/.footstats/footstats.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json (default $LOG_FORMAT or console)")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(scorersCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("log-level") {
		c.LogLevel = logging.ParseLevel(logLevel)
	}
	if flags.Changed("log-format") {
		c.LogFormat = logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	logger = logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	logging.SetDefault(logger)
	return nil
}

// openDB opens the configured database, creating its directory if needed.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadBuilder loads the stored dataset into a Record Store and returns a
// dashboard builder over it.
func loadBuilder() (*dashboard.Builder, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	store, err := db.LoadStore()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if store.Empty() {
		return nil, fmt.Errorf("no matches stored yet; run 'footstats fetch --import' first")
	}
	logger.Debug("dataset loaded", "matches", len(store.Matches()), "teams", len(store.Teams()))

	return dashboard.New(store, dashboard.Defaults{
		Team:          cfg.DefaultTeam,
		YearFloor:     cfg.YearFloor,
		TopScorers:    cfg.TopScorers,
		RecentMatches: cfg.RecentMatches,
	}), nil
}
