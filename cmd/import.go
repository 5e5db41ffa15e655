package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import the CSV dataset into the database",
	Long: `Read results.csv, goalscorers.csv, shootouts.csv and an optional
locations.csv from dir (default $FOOTSTATS_DATA_DIR) and replace everything
stored in the database with them. Files may be gzip (.gz) or zstd (.zst)
compressed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := cfg.DataDir
	if len(args) == 1 {
		dir = args[0]
	}
	return importDir(dir)
}

func importDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	started := time.Now()
	ds, err := ingest.LoadDir(abs)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	logger.Debug("dataset parsed", "dir", abs, "elapsed", time.Since(started))

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ReplaceDataset(ds, abs); err != nil {
		return fmt.Errorf("store dataset: %w", err)
	}
	logger.Info("dataset imported",
		"dir", abs,
		"matches", len(ds.Matches),
		"goals", len(ds.Goals),
		"shootouts", len(ds.Shootouts),
		"locations", len(ds.Locations),
		"elapsed", time.Since(started),
	)
	fmt.Fprintf(os.Stdout, "Imported %d matches, %d goals, %d shootouts into %s\n",
		len(ds.Matches), len(ds.Goals), len(ds.Shootouts), cfg.DBPath)
	return nil
}
