package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-football-stats/internal/model"
)

func ptr(n int) *int { return &n }

func played(id, year int, home, away string, hs, as int) model.Match {
	return model.Match{
		ID:        id,
		Date:      time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: ptr(hs),
		AwayScore: ptr(as),
	}
}

func example() []model.Match {
	return []model.Match{
		played(10, 2020, "A", "B", 2, 1),
		played(11, 2021, "B", "A", 0, 0),
	}
}

func TestTeamStats_Example(t *testing.T) {
	s, ok := TeamStats(example(), "A")
	require.True(t, ok)
	assert.Equal(t, model.TeamStats{Team: "A", Wins: 1, Losses: 0, Draws: 1, TotalGames: 2}, s)
	assert.Equal(t, 50.0, s.WinPct())
	assert.Equal(t, 0.0, s.LossPct())
	assert.Equal(t, 50.0, s.DrawPct())
}

func TestTeamStats_EmptyTeam(t *testing.T) {
	s, ok := TeamStats(example(), "")
	assert.False(t, ok)
	assert.Zero(t, s)
}

func TestTeamStats_IgnoresOtherFixturesAndUnplayed(t *testing.T) {
	matches := append(example(),
		played(12, 2021, "C", "D", 5, 0),
		model.Match{ID: 13, Date: time.Now(), HomeTeam: "A", AwayTeam: "C"},
	)
	s, ok := TeamStats(matches, "A")
	require.True(t, ok)
	assert.Equal(t, 2, s.TotalGames)
}

func TestTeamStats_Invariants(t *testing.T) {
	matches := []model.Match{
		played(0, 2018, "A", "B", 1, 0),
		played(1, 2018, "B", "A", 3, 1),
		played(2, 2019, "A", "C", 2, 2),
		played(3, 2019, "C", "A", 0, 4),
		played(4, 2019, "B", "C", 1, 1),
		played(5, 2020, "A", "B", 0, 1),
	}
	for _, team := range []string{"A", "B", "C", "D"} {
		s, ok := TeamStats(matches, team)
		require.True(t, ok)
		assert.Equal(t, s.TotalGames, s.Wins+s.Losses+s.Draws, team)
		assert.Len(t, WonIDs(matches, team), s.Wins, team)

		wins := 0
		for _, won := range WinMask(matches, team) {
			if won {
				wins++
			}
		}
		assert.Equal(t, s.Wins, wins, team)
	}
}

func TestOutcome(t *testing.T) {
	m := played(0, 2020, "A", "B", 2, 1)
	assert.Equal(t, model.OutcomeWin, Outcome(m, "A"))
	assert.Equal(t, model.OutcomeLoss, Outcome(m, "B"))
	assert.Equal(t, model.OutcomeNone, Outcome(m, "C"))

	d := played(1, 2020, "A", "B", 1, 1)
	assert.Equal(t, model.OutcomeDraw, Outcome(d, "B"))
}

func TestWonIDs_StableIdentifiers(t *testing.T) {
	assert.Equal(t, []int{10}, WonIDs(example(), "A"))
	assert.Empty(t, WonIDs(example(), "B"))
	assert.Equal(t, []bool{true, false}, WinMask(example(), "A"))
}

func TestPercentage_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, model.Percentage(0, 0))
	assert.Equal(t, 66.7, model.Percentage(2, 3))
}
