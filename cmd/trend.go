package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Win percentage per year for a team",
	Long: `Print the team's wins, games played and win percentage per calendar year,
for the current selection and for all tournaments and opponents ("total").`,
	Args: cobra.NoArgs,
	RunE: runTrend,
}

func init() {
	addSelectionFlags(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, nil)
	if err != nil {
		return err
	}
	report.PrintSelection(os.Stdout, d)
	report.PrintYearTrend(os.Stdout, d.Trend)
	return nil
}
