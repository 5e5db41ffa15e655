// Package dataset holds the Record Store: the full, read-only set of matches,
// goal events, shootouts and map locations for one process. A Store is built
// once and handed explicitly to whoever needs it; nothing in it is mutated
// after New returns, so it may be shared by concurrent readers.
package dataset

import (
	"sort"

	"github.com/pable/go-football-stats/internal/model"
)

// Store is an immutable handle over every loaded record.
type Store struct {
	matches   []model.Match
	goals     []model.GoalEvent
	shootouts []model.Shootout
	locations []model.Location

	teams   []string
	maxYear int
}

// New builds a Store. Matches are renumbered so that ID equals position,
// which makes IDs stable identifiers for the lifetime of the Store.
func New(matches []model.Match, goals []model.GoalEvent, shootouts []model.Shootout, locations []model.Location) *Store {
	s := &Store{
		matches:   make([]model.Match, len(matches)),
		goals:     append([]model.GoalEvent(nil), goals...),
		shootouts: append([]model.Shootout(nil), shootouts...),
		locations: append([]model.Location(nil), locations...),
	}
	seen := make(map[string]struct{})
	for i, m := range matches {
		m.ID = i
		s.matches[i] = m
		for _, t := range []string{m.HomeTeam, m.AwayTeam} {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				s.teams = append(s.teams, t)
			}
		}
		if y := m.Date.Year(); y > s.maxYear {
			s.maxYear = y
		}
	}
	sort.Strings(s.teams)
	return s
}

// Matches returns a copy of every match, including unplayed fixtures.
func (s *Store) Matches() []model.Match {
	return append([]model.Match(nil), s.matches...)
}

// Goals returns a copy of every goal event.
func (s *Store) Goals() []model.GoalEvent {
	return append([]model.GoalEvent(nil), s.goals...)
}

// Shootouts returns a copy of every shootout.
func (s *Store) Shootouts() []model.Shootout {
	return append([]model.Shootout(nil), s.shootouts...)
}

// Locations returns a copy of the map locations.
func (s *Store) Locations() []model.Location {
	return append([]model.Location(nil), s.locations...)
}

// Teams returns every team name, sorted.
func (s *Store) Teams() []string {
	return append([]string(nil), s.teams...)
}

// HasTeam reports whether team occurs in any match.
func (s *Store) HasTeam(team string) bool {
	i := sort.SearchStrings(s.teams, team)
	return i < len(s.teams) && s.teams[i] == team
}

// Empty reports whether the store holds no matches.
func (s *Store) Empty() bool { return len(s.matches) == 0 }

// MaxYear returns the latest match year in the dataset, or 0 when empty.
func (s *Store) MaxYear() int { return s.maxYear }

// Options lists the values a team's filter controls can take.
type Options struct {
	Team        string          `json:"team"`
	Tournaments []string        `json:"tournaments"`
	Opponents   []string        `json:"opponents"`
	Years       model.YearRange `json:"years"`
}

// OptionsFor returns the tournaments team played in (first appearance
// order), its opponents (sorted) and the year bounds from its first match to
// the last match in the dataset. ok is false if team never played.
func (s *Store) OptionsFor(team string) (opts Options, ok bool) {
	opts.Team = team
	tournaments := make(map[string]struct{})
	opponents := make(map[string]struct{})
	first := 0
	for _, m := range s.matches {
		if !m.Involves(team) {
			continue
		}
		if _, seen := tournaments[m.Tournament]; !seen {
			tournaments[m.Tournament] = struct{}{}
			opts.Tournaments = append(opts.Tournaments, m.Tournament)
		}
		if opp := m.Opponent(team); opp != "" {
			opponents[opp] = struct{}{}
		}
		if y := m.Date.Year(); first == 0 || y < first {
			first = y
		}
	}
	if first == 0 {
		return Options{Team: team}, false
	}
	for o := range opponents {
		opts.Opponents = append(opts.Opponents, o)
	}
	sort.Strings(opts.Opponents)
	opts.Years = model.YearRange{Start: first, End: s.maxYear}
	return opts, true
}
