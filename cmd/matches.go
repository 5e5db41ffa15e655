package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/report"
)

var matchesLimit int

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Most recent matches for a team, wins highlighted",
	Args:  cobra.NoArgs,
	RunE:  runMatches,
}

func init() {
	addSelectionFlags(matchesCmd)
	matchesCmd.Flags().IntVarP(&matchesLimit, "limit", "n", 0, "number of matches to show (default $FOOTSTATS_RECENT_MATCHES); 0 keeps the default")
}

func runMatches(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, func(b *dashboard.Builder) {
		if matchesLimit > 0 {
			b.Defaults.RecentMatches = matchesLimit
		}
	})
	if err != nil {
		return err
	}
	report.PrintSelection(os.Stdout, d)
	report.PrintRecentMatches(os.Stdout, d.Recent)
	return nil
}
