package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/dataset"
	"github.com/pable/go-football-stats/internal/model"
)

const maxBodyBytes = 1 << 16

type teamsResponse struct {
	Teams       []string `json:"teams"`
	DefaultTeam string   `json:"default_team"`
}

type optionsResponse struct {
	dataset.Options
	DefaultYears model.YearRange `json:"default_years"`
}

// dashboardRequest is the POST body. An absent tournaments field keeps every
// tournament; an empty list keeps none.
type dashboardRequest struct {
	Team        model.TeamSet `json:"team"`
	Tournaments []string      `json:"tournaments" validate:"omitempty,dive,required"`
	Opponents   []string      `json:"opponents" validate:"omitempty,dive,required"`
	Years       []int         `json:"years" validate:"omitempty,len=2,dive,min=1800,max=2200"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.builder.Store.Empty() {
		status = "empty"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"teams":   len(s.builder.Store.Teams()),
		"matches": len(s.builder.Store.Matches()),
	})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, teamsResponse{
		Teams:       s.builder.Store.Teams(),
		DefaultTeam: s.builder.DefaultTeam(),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	if unescaped, err := url.PathUnescape(team); err == nil {
		team = unescaped
	}
	opts, ok := s.builder.Store.OptionsFor(team)
	if !ok {
		s.writeError(w, r, errors.Wrapf(model.ErrNotFound, "team %q is not in the dataset", team))
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Options: opts, DefaultYears: s.builder.DefaultYears(opts)})
}

// handleDashboardQuery reads the selection from the query string:
// team and opponent and tournament repeat, from and to are years.
// A tournament parameter that is present but empty selects no tournament.
func (s *Server) handleDashboardQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := dashboard.Selection{
		Teams:     nonEmpty(q["team"]),
		Opponents: nonEmpty(q["opponent"]),
	}
	if vals, ok := q["tournament"]; ok {
		sel.Tournaments = nonEmpty(vals)
		if sel.Tournaments == nil {
			sel.Tournaments = []string{}
		}
	}
	var err error
	if sel.From, err = queryYear(q, "from"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if sel.To, err = queryYear(q, "to"); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondDashboard(w, r, sel)
}

func (s *Server) handleDashboardBody(w http.ResponseWriter, r *http.Request) {
	var req dashboardRequest
	dec := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if !errors.Is(err, model.ErrInvalidArgument) {
			err = errors.Wrapf(model.ErrInvalidArgument, "decode request: %v", err)
		}
		s.writeError(w, r, err)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.writeError(w, r, errors.Wrapf(model.ErrInvalidArgument, "validate request: %v", err))
		return
	}

	sel := dashboard.Selection{
		Teams:       []string(req.Team),
		Tournaments: req.Tournaments,
		Opponents:   req.Opponents,
	}
	if len(req.Years) == 2 {
		sel.From, sel.To = req.Years[0], req.Years[1]
	}
	s.respondDashboard(w, r, sel)
}

func (s *Server) respondDashboard(w http.ResponseWriter, r *http.Request, sel dashboard.Selection) {
	d, err := s.builder.Build(sel)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func queryYear(q url.Values, key string) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(model.ErrInvalidArgument, "%s must be a year, got %q", key, v)
	}
	return y, nil
}

func nonEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
