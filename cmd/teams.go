package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var teamsCmd = &cobra.Command{
	Use:   "teams [team]",
	Short: "List teams, or the filter options for one team",
	Long: `Without arguments, list every team in the dataset and mark the default one.
With a team name, print the tournaments, opponents and years available for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	b, err := loadBuilder()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		report.PrintTeams(os.Stdout, b.Store.Teams(), b.DefaultTeam())
		return nil
	}

	team := strings.TrimSpace(args[0])
	opts, ok := b.Store.OptionsFor(team)
	if !ok {
		return fmt.Errorf("team %q is not in the dataset", team)
	}
	report.PrintOptions(os.Stdout, opts, b.DefaultYears(opts))
	return nil
}
