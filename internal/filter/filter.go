// Package filter narrows a slice of matches by team, tournament, opponent and
// year. Every function returns a freshly allocated slice and leaves its input
// untouched, so results preserve the input order and never share backing
// arrays with the Record Store.
package filter

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pable/go-football-stats/internal/model"
)

// ByTeam returns the matches in which any of teams played, home or away.
//
// It fails with model.ErrInvalidArgument when teams is empty or holds a blank
// name, and with model.ErrNotFound when matches is non-empty and none of the
// names occurs in it.
func ByTeam(matches []model.Match, teams []string) ([]model.Match, error) {
	set, err := teamSet(teams)
	if err != nil {
		return nil, err
	}
	out := make([]model.Match, 0)
	for _, m := range matches {
		if involves(set, m) {
			out = append(out, m)
		}
	}
	if len(out) == 0 && len(matches) > 0 {
		return nil, errors.Wrapf(model.ErrNotFound,
			"teams %q are not available within the current set of filters", teams)
	}
	return out, nil
}

func teamSet(teams []string) (map[string]struct{}, error) {
	if len(teams) == 0 {
		return nil, errors.Wrap(model.ErrInvalidArgument, "teams should be a name or a list of names")
	}
	set := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if strings.TrimSpace(t) == "" {
			return nil, errors.Wrap(model.ErrInvalidArgument, "team name is empty")
		}
		set[t] = struct{}{}
	}
	return set, nil
}

func involves(set map[string]struct{}, m model.Match) bool {
	if _, ok := set[m.HomeTeam]; ok {
		return true
	}
	_, ok := set[m.AwayTeam]
	return ok
}

// ByTournament returns the matches played in one of the named tournaments.
// An empty list selects nothing.
func ByTournament(matches []model.Match, names []string) []model.Match {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	out := make([]model.Match, 0)
	for _, m := range matches {
		if _, ok := set[m.Tournament]; ok {
			out = append(out, m)
		}
	}
	return out
}

// ByYearRange returns the matches whose calendar year lies in r, inclusive.
func ByYearRange(matches []model.Match, r model.YearRange) []model.Match {
	out := make([]model.Match, 0)
	for _, m := range matches {
		if r.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out
}

// Played drops matches without a final score.
func Played(matches []model.Match) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Played() {
			out = append(out, m)
		}
	}
	return out
}

// All drops unplayed matches and keeps those satisfying every option of c
// that is set. Team and opponent names are checked against the played input
// before any narrowing, so an unknown name fails with model.ErrNotFound while a
// known name that the other options exclude just yields fewer matches. The
// options are intersected, so their order is irrelevant.
func All(matches []model.Match, c model.Criteria) ([]model.Match, error) {
	played := Played(matches)

	var keep []func(model.Match) bool
	for _, names := range [][]string{c.Teams, c.Opponents} {
		if len(names) == 0 {
			continue
		}
		if _, err := ByTeam(played, names); err != nil {
			return nil, err
		}
		set, _ := teamSet(names)
		keep = append(keep, func(m model.Match) bool { return involves(set, m) })
	}
	if c.Tournaments != nil {
		set := make(map[string]struct{}, len(c.Tournaments))
		for _, n := range c.Tournaments {
			set[n] = struct{}{}
		}
		keep = append(keep, func(m model.Match) bool {
			_, ok := set[m.Tournament]
			return ok
		})
	}
	if c.Years != nil {
		r := *c.Years
		keep = append(keep, func(m model.Match) bool { return r.Contains(m.Date) })
	}

	out := make([]model.Match, 0, len(played))
outer:
	for _, m := range played {
		for _, ok := range keep {
			if !ok(m) {
				continue outer
			}
		}
		out = append(out, m)
	}
	return out, nil
}
