package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about the stored dataset: match, team and
tournament counts, goals and shootouts recorded, the date range, the largest
tournaments and when the data was last imported.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.Overview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.Matches == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'footstats fetch --import' to add them.")
		return nil
	}
	top, err := db.TopTournaments(10)
	if err != nil {
		return fmt.Errorf("get tournaments: %w", err)
	}
	last, err := db.LastImport()
	if err != nil {
		return fmt.Errorf("get last import: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	report.PrintOverview(os.Stdout, ov, top, last)
	return nil
}
