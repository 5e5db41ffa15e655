// Package stats classifies matches as wins, losses and draws from one team's
// perspective.
package stats

import "github.com/pable/go-football-stats/internal/model"

// Outcome returns the result of m for team. Matches the team did not play and
// matches without a score yield model.OutcomeNone.
func Outcome(m model.Match, team string) model.Outcome {
	if team == "" || !m.Played() {
		return model.OutcomeNone
	}
	home, away := m.Score()
	var own, other int
	switch team {
	case m.HomeTeam:
		own, other = home, away
	case m.AwayTeam:
		own, other = away, home
	default:
		return model.OutcomeNone
	}
	switch {
	case own > other:
		return model.OutcomeWin
	case own < other:
		return model.OutcomeLoss
	default:
		return model.OutcomeDraw
	}
}

// TeamStats counts wins, losses and draws for team over matches. It returns
// ok=false, and no counts, when team is empty.
func TeamStats(matches []model.Match, team string) (s model.TeamStats, ok bool) {
	if team == "" {
		return model.TeamStats{}, false
	}
	s.Team = team
	for _, m := range matches {
		switch Outcome(m, team) {
		case model.OutcomeWin:
			s.Wins++
		case model.OutcomeLoss:
			s.Losses++
		case model.OutcomeDraw:
			s.Draws++
		}
	}
	s.TotalGames = s.Wins + s.Losses + s.Draws
	return s, true
}

// WonIDs returns the record IDs of the matches team won, in input order.
func WonIDs(matches []model.Match, team string) []int {
	ids := make([]int, 0)
	for _, m := range matches {
		if Outcome(m, team) == model.OutcomeWin {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// WinMask returns a mask parallel to matches marking the ones team won.
func WinMask(matches []model.Match, team string) []bool {
	mask := make([]bool, len(matches))
	for i, m := range matches {
		mask[i] = Outcome(m, team) == model.OutcomeWin
	}
	return mask
}
