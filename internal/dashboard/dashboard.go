// Package dashboard turns one filter selection into every derived view shown
// for a team: stats, top scorers, yearly trend, tournament counts, recent
// matches, per-country win ratios and shootouts. It is the only place where
// the filter, stats and aggregator packages are composed.
package dashboard

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pable/go-football-stats/internal/aggregator"
	"github.com/pable/go-football-stats/internal/dataset"
	"github.com/pable/go-football-stats/internal/filter"
	"github.com/pable/go-football-stats/internal/model"
	"github.com/pable/go-football-stats/internal/stats"
)

// Defaults fill in whatever a Selection leaves unset.
type Defaults struct {
	Team          string // used when present in the dataset
	YearFloor     int    // default range starts no earlier than this, unless the team's data starts later
	TopScorers    int
	RecentMatches int
}

// Selection is one session's filter choice. Zero values mean "use the default":
// Tournaments == nil keeps every tournament, a non-nil empty slice keeps none.
// Stats are computed from the perspective of the first team in Teams.
type Selection struct {
	Teams       []string
	Tournaments []string
	Opponents   []string
	From, To    int
}

// Dashboard is every view derived from one Selection.
type Dashboard struct {
	Team        string                  `json:"team"`
	Criteria    model.Criteria          `json:"criteria"`
	Years       model.YearRange         `json:"years"`
	Options     dataset.Options         `json:"options"`
	Matches     []model.Match           `json:"-"`
	Stats       model.TeamStats         `json:"stats"`
	TopScorers  []model.ScorerCount     `json:"top_scorers"`
	Trend       []model.YearTrend       `json:"trend"`
	Tournaments []model.TournamentCount `json:"tournaments"`
	Recent      model.MatchTable        `json:"recent"`
	Countries   []model.CountryWinRatio `json:"countries"`
	Shootouts   model.ShootoutRecord    `json:"shootouts"`
}

// Builder builds dashboards against one Record Store.
type Builder struct {
	Store    *dataset.Store
	Defaults Defaults
	Now      func() time.Time
}

// New returns a Builder using the wall clock.
func New(store *dataset.Store, defaults Defaults) *Builder {
	return &Builder{Store: store, Defaults: defaults, Now: time.Now}
}

// DefaultTeam returns the configured default team if the dataset has it,
// otherwise the first team alphabetically.
func (b *Builder) DefaultTeam() string {
	if b.Defaults.Team != "" && b.Store.HasTeam(b.Defaults.Team) {
		return b.Defaults.Team
	}
	if teams := b.Store.Teams(); len(teams) > 0 {
		return teams[0]
	}
	return ""
}

// DefaultYears returns the default year range for a team's options:
// from the later of the floor and the team's first year, to the last year.
func (b *Builder) DefaultYears(opts dataset.Options) model.YearRange {
	r := opts.Years
	if b.Defaults.YearFloor > r.Start {
		r.Start = b.Defaults.YearFloor
	}
	return r
}

// Resolve applies defaults to sel and returns the criteria to filter with
// along with the options of the primary team, the first of Criteria.Teams.
func (b *Builder) Resolve(sel Selection) (model.Criteria, dataset.Options, error) {
	teams := sel.Teams
	if len(teams) == 0 {
		if def := b.DefaultTeam(); def != "" {
			teams = []string{def}
		}
	}
	if len(teams) == 0 {
		return model.Criteria{}, dataset.Options{}, errors.Wrap(model.ErrNotFound, "dataset has no teams")
	}
	for _, t := range teams {
		if t == "" {
			return model.Criteria{}, dataset.Options{}, errors.Wrap(model.ErrInvalidArgument, "team names must not be empty")
		}
	}
	team := teams[0]
	opts, ok := b.Store.OptionsFor(team)
	if !ok {
		return model.Criteria{}, dataset.Options{}, errors.Wrapf(model.ErrNotFound, "team %q is not in the dataset", team)
	}

	years := b.DefaultYears(opts)
	if sel.From != 0 {
		years.Start = sel.From
	}
	if sel.To != 0 {
		years.End = sel.To
	}
	return model.Criteria{
		Teams:       teams,
		Tournaments: sel.Tournaments,
		Opponents:   sel.Opponents,
		Years:       &years,
	}, opts, nil
}

// Build resolves sel and computes every view.
func (b *Builder) Build(sel Selection) (*Dashboard, error) {
	c, opts, err := b.Resolve(sel)
	if err != nil {
		return nil, err
	}
	team := c.Teams[0]
	all := b.Store.Matches()

	matches, err := filter.All(all, c)
	if err != nil {
		return nil, err
	}
	// The "Total" trend line ignores tournament and opponent choices.
	total, err := filter.All(all, model.Criteria{Teams: c.Teams, Years: c.Years})
	if err != nil {
		return nil, err
	}

	st, _ := stats.TeamStats(matches, team)
	trend := aggregator.ByYear(matches, team, aggregator.SeriesFiltered)
	trend = append(trend, aggregator.ByYear(total, team, aggregator.SeriesTotal)...)

	return &Dashboard{
		Team:        team,
		Criteria:    c,
		Years:       *c.Years,
		Options:     opts,
		Matches:     matches,
		Stats:       st,
		TopScorers:  aggregator.TopScorers(b.Store.Goals(), matches, team, b.Defaults.TopScorers),
		Trend:       trend,
		Tournaments: aggregator.ByTournament(matches),
		Recent:      aggregator.Recent(matches, team, b.Defaults.RecentMatches, b.Now()),
		Countries:   aggregator.WinRatioByCountry(matches, b.Store.Locations(), team),
		Shootouts:   aggregator.Shootouts(b.Store.Shootouts(), matches, team),
	}, nil
}
