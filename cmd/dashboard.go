package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show every view for a team",
	Long: `Print the full dashboard for one team: win/loss/draw stats and shootouts,
top scorers, win percentage per year (filtered and total), matches per
tournament, the most recent matches and the win ratio per host country.`,
	Example: `  footstats dashboard --team Netherlands --from 1988 --to 2014
  footstats dashboard --team Brazil --tournament "FIFA World Cup" --opponent Argentina`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	addSelectionFlags(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, nil)
	if err != nil {
		return err
	}
	report.PrintDashboard(os.Stdout, d)
	return nil
}
