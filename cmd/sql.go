package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the results database",
	Long: `Run an arbitrary SQL query against the results database and print results as a table.

Schema overview:
  results(id, date TEXT, home_team, away_team, home_score, away_score,
    tournament, city, country, neutral)
  goalscorers(id, date TEXT, home_team, away_team, team, scorer, minute, own_goal, penalty)
  shootouts(id, date TEXT, home_team, away_team, winner, first_shooter)
  locations(country, latitude, longitude)
  imports(id, source, imported_at, matches, goals, shootouts)

Note: dates are stored as TEXT in YYYY-MM-DD form, so substr(date, 1, 4) is the year.
Unplayed fixtures have NULL scores.`,
	Example: `  footstats sql "SELECT tournament, COUNT(*) n FROM results GROUP BY 1 ORDER BY n DESC LIMIT 5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}
	report.PrintRows(os.Stdout, cols, rows)
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
