package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/dashboard"
)

var (
	selTeams       []string
	selTournaments []string
	selOpponents   []string
	selFrom        int
	selTo          int
)

// addSelectionFlags registers the filter flags shared by every view command.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&selTeams, "team", nil, "team to analyse; repeat to pool several (default $FOOTSTATS_DEFAULT_TEAM)")
	cmd.Flags().StringArrayVar(&selTournaments, "tournament", nil, "keep only this tournament; repeatable, pass \"\" to select none")
	cmd.Flags().StringArrayVar(&selOpponents, "opponent", nil, "keep only matches against this team; repeatable")
	cmd.Flags().IntVar(&selFrom, "from", 0, "first year (default: later of the year floor and the team's first match)")
	cmd.Flags().IntVar(&selTo, "to", 0, "last year (default: last year in the dataset)")
}

// selectionFromFlags builds a Selection from the parsed flags. A --tournament
// flag that is given but empty selects no tournament at all.
func selectionFromFlags(cmd *cobra.Command) dashboard.Selection {
	sel := dashboard.Selection{
		Teams:     trimAll(selTeams),
		Opponents: trimAll(selOpponents),
		From:      selFrom,
		To:        selTo,
	}
	if cmd.Flags().Changed("tournament") {
		sel.Tournaments = trimAll(selTournaments)
		if sel.Tournaments == nil {
			sel.Tournaments = []string{}
		}
	}
	return sel
}

func trimAll(vals []string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	return trimAll(strings.Split(s, ","))
}

// buildDashboard loads the store and builds the dashboard for the flags of cmd.
func buildDashboard(cmd *cobra.Command, adjust func(*dashboard.Builder)) (*dashboard.Dashboard, error) {
	b, err := loadBuilder()
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(b)
	}
	return b.Build(selectionFromFlags(cmd))
}
