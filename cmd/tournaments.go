package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Matches per tournament for a team",
	Args:  cobra.NoArgs,
	RunE:  runTournaments,
}

func init() {
	addSelectionFlags(tournamentsCmd)
}

func runTournaments(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, nil)
	if err != nil {
		return err
	}
	report.PrintSelection(os.Stdout, d)
	report.PrintTournamentCounts(os.Stdout, d.Tournaments)
	return nil
}
