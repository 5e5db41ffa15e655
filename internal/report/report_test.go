package report

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/pable/go-football-stats/internal/aggregator"
	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/model"
	"github.com/pable/go-football-stats/internal/storage"
)

func init() {
	color.NoColor = true
}

func ptr(n int) *int { return &n }

func ratio(f float64) *float64 { return &f }

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	PrintStats(&buf, model.TeamStats{Team: "A", Wins: 1, Draws: 1, TotalGames: 2}, model.ShootoutRecord{Won: 1})
	out := buf.String()
	for _, want := range []string{"A", "50.0%", "0.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTopScorersEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintTopScorers(&buf, nil)
	if !strings.Contains(buf.String(), "no goals") {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintYearTrendPivots(t *testing.T) {
	var buf bytes.Buffer
	PrintYearTrend(&buf, []model.YearTrend{
		{Year: 2021, Wins: 0, TotalGames: 1, WinPct: 0, Series: aggregator.SeriesFiltered},
		{Year: 2020, Wins: 1, TotalGames: 1, WinPct: 100, Series: aggregator.SeriesTotal},
		{Year: 2021, Wins: 1, TotalGames: 2, WinPct: 50, Series: aggregator.SeriesTotal},
	})
	out := buf.String()
	i2020 := strings.Index(out, "2020")
	i2021 := strings.Index(out, "2021")
	if i2020 < 0 || i2021 < 0 || i2020 > i2021 {
		t.Fatalf("years not ascending:\n%s", out)
	}
	if !strings.Contains(out, "—") {
		t.Errorf("expected a dash for 2020 in the filtered series:\n%s", out)
	}
	if !strings.Contains(out, "1/2") || !strings.Contains(out, "50.0%") {
		t.Errorf("missing total row for 2021:\n%s", out)
	}
}

func TestPrintRecentMatches(t *testing.T) {
	var buf bytes.Buffer
	d := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	PrintRecentMatches(&buf, model.MatchTable{
		Matches: []model.Match{{Date: d, HomeTeam: "A", AwayTeam: "B", HomeScore: ptr(2), AwayScore: ptr(1), Tournament: "Cup", City: "X", Country: "Land"}},
		Won:     []bool{true},
	})
	out := buf.String()
	for _, want := range []string{"2020-03-01", "2-1", "X, Land"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBand(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{1, "darkgreen"},
		{0.76, "darkgreen"},
		{0.75, "lightgreen"},
		{0.5, "orange"},
		{0.26, "orange"},
		{0.25, "red"},
		{0, "red"},
	}
	for _, c := range cases {
		if got := Band(c.ratio); got != c.want {
			t.Errorf("Band(%v) = %s, want %s", c.ratio, got, c.want)
		}
	}
}

func TestPrintCountryWinRatiosSkipsUnplayed(t *testing.T) {
	var buf bytes.Buffer
	PrintCountryWinRatios(&buf, []model.CountryWinRatio{
		{Location: model.Location{Country: "Brazil"}, Wins: 1, TotalGames: 2, WinRatio: ratio(0.5)},
		{Location: model.Location{Country: "Japan"}},
	})
	out := buf.String()
	if !strings.Contains(out, "Brazil") || !strings.Contains(out, "50.00%") || !strings.Contains(out, "orange") {
		t.Errorf("missing Brazil row:\n%s", out)
	}
	if strings.Contains(out, "Japan") {
		t.Errorf("Japan has no games and should be skipped:\n%s", out)
	}

	buf.Reset()
	PrintCountryWinRatios(&buf, nil)
	if !strings.Contains(buf.String(), "no matches") {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintTeamsMarksDefault(t *testing.T) {
	var buf bytes.Buffer
	PrintTeams(&buf, []string{"Belgium", "Netherlands"}, "Netherlands")
	if !strings.Contains(buf.String(), "*") || !strings.Contains(buf.String(), "(2 teams") {
		t.Errorf("got:\n%s", buf.String())
	}
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	PrintSelection(&buf, &dashboard.Dashboard{
		Criteria: model.Criteria{Teams: []string{"A"}, Tournaments: []string{}, Opponents: []string{"B"}},
		Years:    model.YearRange{Start: 2000, End: 2010},
	})
	out := buf.String()
	for _, want := range []string{"Team: A", "2000–2010", "Tournaments: none", "Opponents: B", "Matches: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestPrintOverview(t *testing.T) {
	var buf bytes.Buffer
	PrintOverview(&buf,
		storage.Overview{Matches: 3, Played: 2, FirstDate: sql.NullString{String: "2020-03-01", Valid: true}},
		[]storage.TournamentRow{{Tournament: "Cup", Matches: 2}},
		&storage.ImportInfo{Source: "/data", ImportedAt: time.Now()},
	)
	out := buf.String()
	for _, want := range []string{"2020-03-01", "Cup", "Last import", "/data"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	PrintRows(&buf, []string{"home_team", "home_score"}, [][]string{{"Scotland", "0"}, {"England", "NULL"}})
	out := buf.String()
	for _, want := range []string{"HOME", "Scotland", "England", "NULL"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
