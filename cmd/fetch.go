package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/ingest"
)

var (
	fetchDir    string
	fetchImport bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the international results dataset",
	Long: `Download results.csv, goalscorers.csv and shootouts.csv from
$FOOTSTATS_DATASET_URL (the public international_results repository by
default) into --dir. With --import the files are imported right away.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "download directory (default $FOOTSTATS_DATA_DIR)")
	fetchCmd.Flags().BoolVar(&fetchImport, "import", false, "import the downloaded files into the database")
}

func runFetch(cmd *cobra.Command, args []string) error {
	dir := fetchDir
	if dir == "" {
		dir = cfg.DataDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ingest.NewClient(cfg.DatasetURL, cfg.FetchTimeout)
	logger.Info("downloading dataset", "url", cfg.DatasetURL, "dir", dir)
	paths, err := client.Download(ctx, dir)
	if err != nil {
		return fmt.Errorf("download dataset: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintf(os.Stdout, "  ✓ %s\n", p)
	}

	if !fetchImport {
		fmt.Fprintf(os.Stdout, "Run 'footstats import %s' to load them.\n", dir)
		return nil
	}
	return importDir(dir)
}
