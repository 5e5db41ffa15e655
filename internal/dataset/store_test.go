package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-football-stats/internal/model"
)

func on(year int, home, away, tournament string) model.Match {
	return model.Match{
		ID:         99,
		Date:       time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC),
		HomeTeam:   home,
		AwayTeam:   away,
		Tournament: tournament,
	}
}

func newStore() *Store {
	return New([]model.Match{
		on(1990, "Netherlands", "Germany", "Friendly"),
		on(1996, "England", "Netherlands", "UEFA Euro"),
		on(2004, "Germany", "Brazil", "Friendly"),
		on(2026, "Netherlands", "Brazil", "FIFA World Cup"),
	}, nil, nil, []model.Location{{Country: "Germany", Latitude: 51.2, Longitude: 10.4}})
}

func TestNew_RenumbersIDs(t *testing.T) {
	s := newStore()
	for i, m := range s.Matches() {
		assert.Equal(t, i, m.ID)
	}
}

func TestTeams_SortedUnique(t *testing.T) {
	s := newStore()
	assert.Equal(t, []string{"Brazil", "England", "Germany", "Netherlands"}, s.Teams())
	assert.True(t, s.HasTeam("England"))
	assert.False(t, s.HasTeam("Atlantis"))
	assert.Equal(t, 2026, s.MaxYear())
}

func TestMatches_ReturnsCopy(t *testing.T) {
	s := newStore()
	got := s.Matches()
	got[0].HomeTeam = "changed"
	assert.Equal(t, "Netherlands", s.Matches()[0].HomeTeam)
}

func TestOptionsFor(t *testing.T) {
	s := newStore()
	opts, ok := s.OptionsFor("Netherlands")
	require.True(t, ok)
	assert.Equal(t, []string{"Friendly", "UEFA Euro", "FIFA World Cup"}, opts.Tournaments)
	assert.Equal(t, []string{"Brazil", "England", "Germany"}, opts.Opponents)
	assert.Equal(t, model.YearRange{Start: 1990, End: 2026}, opts.Years)

	_, ok = s.OptionsFor("Atlantis")
	assert.False(t, ok)
}

func TestEmptyStore(t *testing.T) {
	s := New(nil, nil, nil, nil)
	assert.True(t, s.Empty())
	assert.Empty(t, s.Teams())
	assert.Zero(t, s.MaxYear())
}
