package aggregator

import (
	"sort"
	"time"

	"github.com/pable/go-football-stats/internal/model"
	"github.com/pable/go-football-stats/internal/stats"
)

// Series labels for the per-year trend lines.
const (
	SeriesFiltered = "Filtered"
	SeriesTotal    = "Total"
)

// ByYear groups matches by calendar year and returns team's win percentage per
// year, oldest first. The denominator is every played match in that year.
func ByYear(matches []model.Match, team, series string) []model.YearTrend {
	byYear := make(map[int][]model.Match)
	for _, m := range matches {
		y := m.Date.Year()
		byYear[y] = append(byYear[y], m)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]model.YearTrend, 0, len(years))
	for _, y := range years {
		group := byYear[y]
		total := 0
		for _, m := range group {
			if m.Played() {
				total++
			}
		}
		wins := len(stats.WonIDs(group, team))
		out = append(out, model.YearTrend{
			Year:       y,
			Wins:       wins,
			TotalGames: total,
			WinPct:     model.Percentage(wins, total),
			Series:     series,
		})
	}
	return out
}

// ByTournament counts matches per tournament, most frequent first. Ties are
// ordered by tournament name.
func ByTournament(matches []model.Match) []model.TournamentCount {
	counts := make(map[string]int)
	for _, m := range matches {
		counts[m.Tournament]++
	}
	out := make([]model.TournamentCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, model.TournamentCount{Tournament: name, Matches: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Tournament < out[j].Tournament
	})
	return out
}

// TopScorers counts the goals credited to team in the given matches, per
// scorer. Goals are joined to matches on date, home team and away team; goals
// from any other fixture are ignored. Ties are ordered by scorer name. A
// non-positive limit returns every scorer.
func TopScorers(goals []model.GoalEvent, matches []model.Match, team string, limit int) []model.ScorerCount {
	fixtures := make(map[model.MatchKey]struct{}, len(matches))
	for _, m := range matches {
		fixtures[m.Key()] = struct{}{}
	}

	counts := make(map[string]int)
	for _, g := range goals {
		if g.Team != team {
			continue
		}
		if _, ok := fixtures[g.Key()]; !ok {
			continue
		}
		counts[g.Scorer]++
	}

	out := make([]model.ScorerCount, 0, len(counts))
	for scorer, n := range counts {
		out = append(out, model.ScorerCount{Scorer: scorer, Goals: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Scorer < out[j].Scorer
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WinRatioByCountry returns team's win ratio in matches hosted by each
// location's country, in location order. WinRatio stays nil where the team
// played no games.
func WinRatioByCountry(matches []model.Match, locations []model.Location, team string) []model.CountryWinRatio {
	type tally struct{ wins, total int }
	byCountry := make(map[string]*tally)
	for _, m := range matches {
		o := stats.Outcome(m, team)
		if o == model.OutcomeNone {
			continue
		}
		t := byCountry[m.Country]
		if t == nil {
			t = &tally{}
			byCountry[m.Country] = t
		}
		t.total++
		if o == model.OutcomeWin {
			t.wins++
		}
	}

	out := make([]model.CountryWinRatio, 0, len(locations))
	for _, loc := range locations {
		row := model.CountryWinRatio{Location: loc}
		if t := byCountry[loc.Country]; t != nil {
			ratio := float64(t.wins) / float64(t.total)
			row.Wins = t.wins
			row.TotalGames = t.total
			row.WinRatio = &ratio
		}
		out = append(out, row)
	}
	return out
}

// Recent returns up to limit played matches dated on or before now, newest
// first, with a mask marking the ones team won.
func Recent(matches []model.Match, team string, limit int, now time.Time) model.MatchTable {
	past := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Played() && !m.Date.After(now) {
			past = append(past, m)
		}
	}
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date)
	})
	if limit > 0 && len(past) > limit {
		past = past[:limit]
	}
	return model.MatchTable{Matches: past, Won: stats.WinMask(past, team)}
}

// Shootouts counts the penalty shootouts team won and lost among matches.
func Shootouts(shootouts []model.Shootout, matches []model.Match, team string) model.ShootoutRecord {
	fixtures := make(map[model.MatchKey]struct{}, len(matches))
	for _, m := range matches {
		if m.Involves(team) {
			fixtures[m.Key()] = struct{}{}
		}
	}
	var rec model.ShootoutRecord
	for _, s := range shootouts {
		if _, ok := fixtures[s.Key()]; !ok {
			continue
		}
		if s.Winner == team {
			rec.Won++
		} else {
			rec.Lost++
		}
	}
	return rec
}
