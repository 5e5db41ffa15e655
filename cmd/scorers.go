package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/report"
)

var scorersLimit int

var scorersCmd = &cobra.Command{
	Use:   "scorers",
	Short: "Top goal scorers for a team",
	Args:  cobra.NoArgs,
	RunE:  runScorers,
}

func init() {
	addSelectionFlags(scorersCmd)
	scorersCmd.Flags().IntVarP(&scorersLimit, "limit", "n", 0, "number of scorers to show (default $FOOTSTATS_TOP_SCORERS); 0 keeps the default")
}

func runScorers(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, func(b *dashboard.Builder) {
		if scorersLimit > 0 {
			b.Defaults.TopScorers = scorersLimit
		}
	})
	if err != nil {
		return err
	}
	report.PrintSelection(os.Stdout, d)
	report.PrintTopScorers(os.Stdout, d.TopScorers)
	return nil
}
