package filter

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-football-stats/internal/model"
)

func ptr(n int) *int { return &n }

func match(id int, day, home, away string, hs, as *int, tournament string) model.Match {
	d, err := time.Parse(model.DateLayout, day)
	if err != nil {
		panic(err)
	}
	return model.Match{ID: id, Date: d, HomeTeam: home, AwayTeam: away, HomeScore: hs, AwayScore: as, Tournament: tournament}
}

func ids(matches []model.Match) []int {
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}

func fixture() []model.Match {
	return []model.Match{
		match(0, "2020-03-01", "A", "B", ptr(2), ptr(1), "Cup"),
		match(1, "2021-05-01", "B", "A", ptr(0), ptr(0), "Cup"),
		match(2, "2021-09-01", "A", "C", ptr(3), ptr(0), "Friendly"),
		match(3, "2022-01-01", "C", "B", ptr(1), ptr(4), "Qualifier"),
		match(4, "2023-01-01", "A", "B", nil, nil, "Cup"), // not yet played
	}
}

func TestByTeam_SingleTeam(t *testing.T) {
	records := fixture()[:2]
	got, err := ByTeam(records, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids(got))
}

func TestByTeam_NoDuplicatesAndOrderPreserved(t *testing.T) {
	got, err := ByTeam(fixture(), []string{"B", "A"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(got))
}

func TestByTeam_NotFound(t *testing.T) {
	_, err := ByTeam(fixture()[:2], []string{"C"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestByTeam_PartialMatchIsNotAnError(t *testing.T) {
	got, err := ByTeam(fixture(), []string{"C", "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestByTeam_InvalidArgument(t *testing.T) {
	for name, teams := range map[string][]string{
		"nil":   nil,
		"empty": {},
		"blank": {"A", "  "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ByTeam(fixture(), teams)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidArgument))
		})
	}
}

func TestByTournament(t *testing.T) {
	got := ByTournament(fixture(), []string{"Friendly", "Qualifier"})
	assert.Equal(t, []int{2, 3}, ids(got))

	none := ByTournament(fixture(), []string{})
	assert.Empty(t, none)
}

func TestByYearRange_Boundaries(t *testing.T) {
	single := ByYearRange(fixture(), model.YearRange{Start: 2021, End: 2021})
	assert.Equal(t, []int{1, 2}, ids(single))
	for _, m := range single {
		assert.Equal(t, 2021, m.Date.Year())
	}

	inclusive := ByYearRange(fixture(), model.YearRange{Start: 2020, End: 2022})
	assert.Equal(t, []int{0, 1, 2, 3}, ids(inclusive))

	inverted := ByYearRange(fixture(), model.YearRange{Start: 2022, End: 2020})
	assert.Empty(t, inverted)
}

func TestAll_DropsUnplayed(t *testing.T) {
	got, err := All(fixture(), model.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, ids(got))
}

func TestAll_CombinesOptions(t *testing.T) {
	c := model.Criteria{
		Teams:       []string{"A"},
		Tournaments: []string{"Cup"},
		Opponents:   []string{"B"},
		Years:       &model.YearRange{Start: 2021, End: 2023},
	}
	got, err := All(fixture(), c)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(got))
}

func TestAll_EmptyTournamentSelectionSelectsNothing(t *testing.T) {
	got, err := All(fixture(), model.Criteria{Teams: []string{"A"}, Tournaments: []string{}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAll_UnknownOpponent(t *testing.T) {
	_, err := All(fixture(), model.Criteria{Teams: []string{"A"}, Opponents: []string{"Z"}})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestAll_KnownOpponentOutsideSelectionIsEmpty(t *testing.T) {
	got, err := All(fixture(), model.Criteria{
		Teams:       []string{"A"},
		Tournaments: []string{"Friendly"},
		Opponents:   []string{"B"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAll_Idempotent(t *testing.T) {
	criteria := []model.Criteria{
		{},
		{Teams: []string{"A"}},
		{Teams: []string{"A"}, Opponents: []string{"C"}},
		{Tournaments: []string{"Cup"}, Years: &model.YearRange{Start: 2020, End: 2020}},
		{Teams: []string{"B"}, Years: &model.YearRange{Start: 1990, End: 1991}},
	}
	for _, c := range criteria {
		once, err := All(fixture(), c)
		require.NoError(t, err)
		twice, err := All(once, c)
		require.NoError(t, err)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestFilters_Commutative(t *testing.T) {
	years := model.YearRange{Start: 2020, End: 2021}
	played := Played(fixture())

	teamFirst, err := ByTeam(played, []string{"A"})
	require.NoError(t, err)
	teamFirst = ByYearRange(ByTournament(teamFirst, []string{"Cup"}), years)

	yearFirst := ByTournament(ByYearRange(played, years), []string{"Cup"})
	yearFirst, err = ByTeam(yearFirst, []string{"A"})
	require.NoError(t, err)

	assert.Equal(t, ids(teamFirst), ids(yearFirst))

	all, err := All(fixture(), model.Criteria{Teams: []string{"A"}, Tournaments: []string{"Cup"}, Years: &years})
	require.NoError(t, err)
	assert.Equal(t, ids(teamFirst), ids(all))
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	in := fixture()
	_, err := All(in, model.Criteria{Teams: []string{"C"}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(in))
}
