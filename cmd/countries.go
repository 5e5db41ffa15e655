package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Win ratio per host country for a team",
	Args:  cobra.NoArgs,
	RunE:  runCountries,
}

func init() {
	addSelectionFlags(countriesCmd)
}

func runCountries(cmd *cobra.Command, args []string) error {
	d, err := buildDashboard(cmd, nil)
	if err != nil {
		return err
	}
	report.PrintSelection(os.Stdout, d)
	report.PrintCountryWinRatios(os.Stdout, d.Countries)
	return nil
}
