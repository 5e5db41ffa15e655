package model

import (
	"math"
	"time"
)

// DateLayout is the calendar-date layout used by the dataset files and the store.
const DateLayout = "2006-01-02"

// Outcome is the result of a match from one team's perspective.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "W"
	case OutcomeLoss:
		return "L"
	case OutcomeDraw:
		return "D"
	default:
		return "-"
	}
}

// ---- Records as loaded from the dataset ----

// Match is one fixture. HomeScore and AwayScore are nil for matches not yet played.
type Match struct {
	ID         int       `json:"id"` // position in the Record Store
	Date       time.Time `json:"date"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	Tournament string    `json:"tournament"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Neutral    bool      `json:"neutral"`
}

// Played reports whether both scores are present.
func (m Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Score returns the score line; zero values for unplayed matches.
func (m Match) Score() (home, away int) {
	if m.HomeScore != nil {
		home = *m.HomeScore
	}
	if m.AwayScore != nil {
		away = *m.AwayScore
	}
	return home, away
}

// Involves reports whether team played home or away.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// Opponent returns the other side for team, or "" if team did not play.
func (m Match) Opponent(team string) string {
	switch team {
	case m.HomeTeam:
		return m.AwayTeam
	case m.AwayTeam:
		return m.HomeTeam
	}
	return ""
}

// Key returns the join key shared with goal and shootout events.
func (m Match) Key() MatchKey {
	return MatchKey{Date: m.Date.Format(DateLayout), HomeTeam: m.HomeTeam, AwayTeam: m.AwayTeam}
}

// MatchKey identifies a fixture across the results, goals and shootouts tables.
type MatchKey struct {
	Date     string
	HomeTeam string
	AwayTeam string
}

// GoalEvent is one goal as recorded in the goalscorers table.
type GoalEvent struct {
	Date     time.Time
	HomeTeam string
	AwayTeam string
	Team     string // team credited with the goal
	Scorer   string
	Minute   *int
	OwnGoal  bool
	Penalty  bool
}

// Key returns the fixture this goal belongs to.
func (g GoalEvent) Key() MatchKey {
	return MatchKey{Date: g.Date.Format(DateLayout), HomeTeam: g.HomeTeam, AwayTeam: g.AwayTeam}
}

// Shootout is a penalty shootout that decided a drawn match.
type Shootout struct {
	Date         time.Time
	HomeTeam     string
	AwayTeam     string
	Winner       string
	FirstShooter string
}

// Key returns the fixture this shootout belongs to.
func (s Shootout) Key() MatchKey {
	return MatchKey{Date: s.Date.Format(DateLayout), HomeTeam: s.HomeTeam, AwayTeam: s.AwayTeam}
}

// Location places a country on the map.
type Location struct {
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// ---- Filter input ----

// YearRange is an inclusive [Start, End] range of calendar years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether t falls in the range.
func (r YearRange) Contains(t time.Time) bool {
	y := t.Year()
	return y >= r.Start && y <= r.End
}

// Criteria narrows the Record Store. Zero-valued options are no-ops, except
// Tournaments: a non-nil empty slice selects no tournament at all.
type Criteria struct {
	Teams       []string   `json:"teams"`
	Tournaments []string   `json:"tournaments"`
	Opponents   []string   `json:"opponents,omitempty"`
	Years       *YearRange `json:"years,omitempty"`
}

// ---- Derived statistics ----

// TeamStats counts results for one team over a set of matches.
type TeamStats struct {
	Team       string `json:"team"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	TotalGames int    `json:"total_games"`
}

// WinPct returns the win percentage rounded to one decimal.
func (s TeamStats) WinPct() float64 { return Percentage(s.Wins, s.TotalGames) }

// LossPct returns the loss percentage rounded to one decimal.
func (s TeamStats) LossPct() float64 { return Percentage(s.Losses, s.TotalGames) }

// DrawPct returns the draw percentage rounded to one decimal.
func (s TeamStats) DrawPct() float64 { return Percentage(s.Draws, s.TotalGames) }

// Percentage returns count/total*100 rounded to one decimal, or 0 when total is 0.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// YearTrend is one point of a per-year win percentage series.
type YearTrend struct {
	Year       int     `json:"year"`
	Wins       int     `json:"wins"`
	TotalGames int     `json:"total_games"`
	WinPct     float64 `json:"win_pct"`
	Series     string  `json:"series"`
}

// TournamentCount is the number of matches played in one tournament.
type TournamentCount struct {
	Tournament string `json:"tournament"`
	Matches    int    `json:"matches"`
}

// ScorerCount is the number of goals credited to one scorer.
type ScorerCount struct {
	Scorer string `json:"scorer"`
	Goals  int    `json:"goals"`
}

// CountryWinRatio is a team's record in matches hosted by one country.
// WinRatio is nil when the team played no games there.
type CountryWinRatio struct {
	Location
	Wins       int      `json:"wins"`
	TotalGames int      `json:"total_games"`
	WinRatio   *float64 `json:"win_ratio"`
}

// MatchTable is a list of matches with a parallel mask marking the ones won.
type MatchTable struct {
	Matches []Match `json:"matches"`
	Won     []bool  `json:"won"`
}

// ShootoutRecord counts penalty shootouts won and lost.
type ShootoutRecord struct {
	Won  int `json:"won"`
	Lost int `json:"lost"`
}
