// Package report renders dashboard views as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-football-stats/internal/aggregator"
	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/dataset"
	"github.com/pable/go-football-stats/internal/model"
	"github.com/pable/go-football-stats/internal/storage"
)

var (
	cWin     = color.New(color.FgGreen, color.Bold)
	cHeading = color.New(color.FgCyan, color.Bold)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w)
	cHeading.Fprintln(w, title)
}

// PrintDashboard prints every view of d.
func PrintDashboard(w io.Writer, d *dashboard.Dashboard) {
	PrintSelection(w, d)
	PrintStats(w, d.Stats, d.Shootouts)
	heading(w, "Top scorers")
	PrintTopScorers(w, d.TopScorers)
	heading(w, "Win % per year")
	PrintYearTrend(w, d.Trend)
	heading(w, "Matches per tournament")
	PrintTournamentCounts(w, d.Tournaments)
	heading(w, "Recent matches")
	PrintRecentMatches(w, d.Recent)
	heading(w, "Win ratio by host country")
	PrintCountryWinRatios(w, d.Countries)
}

// PrintSelection prints a one-line header describing the active filters.
func PrintSelection(w io.Writer, d *dashboard.Dashboard) {
	tournaments := "all"
	switch ts := d.Criteria.Tournaments; {
	case ts == nil:
	case len(ts) == 0:
		tournaments = "none"
	default:
		tournaments = strings.Join(ts, ", ")
	}
	fmt.Fprintf(w, "\nTeam: %s  |  Years: %d–%d  |  Tournaments: %s", strings.Join(d.Criteria.Teams, ", "), d.Years.Start, d.Years.End, tournaments)
	if len(d.Criteria.Opponents) > 0 {
		fmt.Fprintf(w, "  |  Opponents: %s", strings.Join(d.Criteria.Opponents, ", "))
	}
	fmt.Fprintf(w, "  |  Matches: %d\n\n", len(d.Matches))
}

// PrintStats prints the win/loss/draw summary.
func PrintStats(w io.Writer, s model.TeamStats, so model.ShootoutRecord) {
	table := newTable(w)
	table.Header("TEAM", "GP", "W", "L", "D", "WIN%", "LOSS%", "DRAW%", "SO_W", "SO_L")
	table.Append(
		s.Team,
		strconv.Itoa(s.TotalGames),
		strconv.Itoa(s.Wins),
		strconv.Itoa(s.Losses),
		strconv.Itoa(s.Draws),
		fmt.Sprintf("%.1f%%", s.WinPct()),
		fmt.Sprintf("%.1f%%", s.LossPct()),
		fmt.Sprintf("%.1f%%", s.DrawPct()),
		strconv.Itoa(so.Won),
		strconv.Itoa(so.Lost),
	)
	table.Render()
}

// PrintTopScorers prints scorers ranked by goals.
func PrintTopScorers(w io.Writer, scorers []model.ScorerCount) {
	if len(scorers) == 0 {
		fmt.Fprintln(w, "(no goals recorded)")
		return
	}
	table := newTable(w)
	table.Header("#", "SCORER", "GOALS")
	for i, s := range scorers {
		table.Append(strconv.Itoa(i+1), s.Scorer, strconv.Itoa(s.Goals))
	}
	table.Render()
}

// PrintYearTrend prints the filtered and total series side by side, one row
// per year. Years missing from a series show a dash.
func PrintYearTrend(w io.Writer, trend []model.YearTrend) {
	if len(trend) == 0 {
		fmt.Fprintln(w, "(no matches)")
		return
	}
	type pair struct{ filtered, total *model.YearTrend }
	byYear := map[int]*pair{}
	var years []int
	for i := range trend {
		p := &trend[i]
		row, ok := byYear[p.Year]
		if !ok {
			row = &pair{}
			byYear[p.Year] = row
			years = append(years, p.Year)
		}
		switch p.Series {
		case aggregator.SeriesTotal:
			row.total = p
		default:
			row.filtered = p
		}
	}
	sort.Ints(years)

	cell := func(p *model.YearTrend) (string, string) {
		if p == nil {
			return "—", "—"
		}
		return fmt.Sprintf("%d/%d", p.Wins, p.TotalGames), fmt.Sprintf("%.1f%%", p.WinPct)
	}

	table := newTable(w)
	table.Header("YEAR", "W/GP", "WIN%", "TOTAL W/GP", "TOTAL WIN%")
	for _, y := range years {
		fr, fp := cell(byYear[y].filtered)
		tr, tp := cell(byYear[y].total)
		table.Append(strconv.Itoa(y), fr, fp, tr, tp)
	}
	table.Render()
}

// PrintTournamentCounts prints match counts per tournament.
func PrintTournamentCounts(w io.Writer, counts []model.TournamentCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "(no matches)")
		return
	}
	table := newTable(w)
	table.Header("TOURNAMENT", "MATCHES")
	for _, c := range counts {
		table.Append(c.Tournament, strconv.Itoa(c.Matches))
	}
	table.Render()
}

// PrintRecentMatches prints the most recent matches, highlighting wins.
func PrintRecentMatches(w io.Writer, mt model.MatchTable) {
	if len(mt.Matches) == 0 {
		fmt.Fprintln(w, "(no matches)")
		return
	}
	table := newTable(w)
	table.Header("DATE", "HOME", "SCORE", "AWAY", "TOURNAMENT", "VENUE")
	for i, m := range mt.Matches {
		hs, as := m.Score()
		score := fmt.Sprintf("%d-%d", hs, as)
		if mt.Won[i] {
			score = cWin.Sprint(score)
		}
		venue := m.City
		if m.Country != "" {
			venue = strings.TrimPrefix(venue+", "+m.Country, ", ")
		}
		table.Append(m.Date.Format(model.DateLayout), m.HomeTeam, score, m.AwayTeam, m.Tournament, venue)
	}
	table.Render()
}

// Band names the colour band of a win ratio.
func Band(ratio float64) string {
	switch {
	case ratio > 0.75:
		return "darkgreen"
	case ratio > 0.5:
		return "lightgreen"
	case ratio > 0.25:
		return "orange"
	default:
		return "red"
	}
}

var bandColors = map[string]*color.Color{
	"darkgreen":  color.New(color.FgGreen, color.Bold),
	"lightgreen": color.New(color.FgHiGreen),
	"orange":     color.New(color.FgYellow),
	"red":        color.New(color.FgRed),
}

// PrintCountryWinRatios prints the per-country win ratio for every country
// the team played in. Countries without games are skipped.
func PrintCountryWinRatios(w io.Writer, ratios []model.CountryWinRatio) {
	table := newTable(w)
	table.Header("COUNTRY", "LAT", "LON", "W/GP", "WIN%", "BAND")
	rows := 0
	for _, r := range ratios {
		if r.WinRatio == nil {
			continue
		}
		band := Band(*r.WinRatio)
		table.Append(
			r.Country,
			fmt.Sprintf("%.2f", r.Latitude),
			fmt.Sprintf("%.2f", r.Longitude),
			fmt.Sprintf("%d/%d", r.Wins, r.TotalGames),
			fmt.Sprintf("%.2f%%", *r.WinRatio*100),
			bandColors[band].Sprint(band),
		)
		rows++
	}
	if rows == 0 {
		fmt.Fprintln(w, "(no matches in known countries)")
		return
	}
	table.Render()
}

// PrintTeams prints every team name, marking the default one.
func PrintTeams(w io.Writer, teams []string, defaultTeam string) {
	table := newTable(w)
	table.Header(" ", "TEAM")
	for _, t := range teams {
		marker := " "
		if t == defaultTeam {
			marker = "*"
		}
		table.Append(marker, t)
	}
	table.Render()
	fmt.Fprintf(w, "\n(%d teams, * = default)\n", len(teams))
}

// PrintOptions prints the filter options available for a team.
func PrintOptions(w io.Writer, opts dataset.Options, defaultYears model.YearRange) {
	fmt.Fprintf(w, "Team: %s\n", opts.Team)
	fmt.Fprintf(w, "Years: %d–%d (default %d–%d)\n", opts.Years.Start, opts.Years.End, defaultYears.Start, defaultYears.End)
	fmt.Fprintf(w, "Tournaments (%d): %s\n", len(opts.Tournaments), strings.Join(opts.Tournaments, ", "))
	fmt.Fprintf(w, "Opponents (%d): %s\n", len(opts.Opponents), strings.Join(opts.Opponents, ", "))
}

// PrintOverview prints the stored dataset summary.
func PrintOverview(w io.Writer, o storage.Overview, top []storage.TournamentRow, last *storage.ImportInfo) {
	table := newTable(w)
	table.Header("MATCHES", "PLAYED", "TEAMS", "TOURNAMENTS", "GOALS", "SHOOTOUTS", "FROM", "TO")
	table.Append(
		strconv.Itoa(o.Matches),
		strconv.Itoa(o.Played),
		strconv.Itoa(o.Teams),
		strconv.Itoa(o.Tournaments),
		strconv.Itoa(o.Goals),
		strconv.Itoa(o.Shootouts),
		orDash(o.FirstDate.String),
		orDash(o.LastDate.String),
	)
	table.Render()

	if len(top) > 0 {
		heading(w, "Largest tournaments")
		t := newTable(w)
		t.Header("TOURNAMENT", "MATCHES")
		for _, r := range top {
			t.Append(r.Tournament, strconv.Itoa(r.Matches))
		}
		t.Render()
	}
	if last != nil {
		fmt.Fprintf(w, "\nLast import: %s from %s\n", last.ImportedAt.Local().Format("2006-01-02 15:04"), last.Source)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// PrintRows prints an arbitrary result set, such as the output of a raw query.
func PrintRows(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
}
