// Package ingest reads the international results dataset: results,
// goalscorers and shootouts CSV files plus an optional country locations
// table, each possibly gzip or zstd compressed.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pable/go-football-stats/internal/model"
)

// header maps column names to positions, so column order in the files does
// not matter.
type header map[string]int

func readHeader(r *csv.Reader, required ...string) (header, error) {
	cols, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := make(header, len(cols))
	for i, c := range cols {
		h[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(c, "\ufeff")))] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return h, nil
}

func (h header) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// missing reports the dataset's markers for an absent value.
func missing(v string) bool {
	return v == "" || strings.EqualFold(v, "NA")
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(model.DateLayout, v)
}

func parseOptInt(v string) (*int, error) {
	if missing(v) {
		return nil, nil
	}
	// Scores are occasionally written as floats by spreadsheet exports.
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	n := int(f)
	return &n, nil
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(strings.ToLower(v))
	return b
}

// ReadMatches parses results.csv.
func ReadMatches(r io.Reader) ([]model.Match, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "date", "home_team", "away_team", "home_score", "away_score", "tournament")
	if err != nil {
		return nil, err
	}
	var out []model.Match
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d, err := parseDate(h.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: date: %w", line, err)
		}
		hs, err := parseOptInt(h.get(row, "home_score"))
		if err != nil {
			return nil, fmt.Errorf("line %d: home_score: %w", line, err)
		}
		as, err := parseOptInt(h.get(row, "away_score"))
		if err != nil {
			return nil, fmt.Errorf("line %d: away_score: %w", line, err)
		}
		out = append(out, model.Match{
			ID:         len(out),
			Date:       d,
			HomeTeam:   h.get(row, "home_team"),
			AwayTeam:   h.get(row, "away_team"),
			HomeScore:  hs,
			AwayScore:  as,
			Tournament: h.get(row, "tournament"),
			City:       h.get(row, "city"),
			Country:    h.get(row, "country"),
			Neutral:    parseBool(h.get(row, "neutral")),
		})
	}
	return out, nil
}

// ReadGoals parses goalscorers.csv.
func ReadGoals(r io.Reader) ([]model.GoalEvent, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "date", "home_team", "away_team", "team", "scorer")
	if err != nil {
		return nil, err
	}
	var out []model.GoalEvent
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d, err := parseDate(h.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: date: %w", line, err)
		}
		minute, err := parseOptInt(h.get(row, "minute"))
		if err != nil {
			return nil, fmt.Errorf("line %d: minute: %w", line, err)
		}
		out = append(out, model.GoalEvent{
			Date:     d,
			HomeTeam: h.get(row, "home_team"),
			AwayTeam: h.get(row, "away_team"),
			Team:     h.get(row, "team"),
			Scorer:   h.get(row, "scorer"),
			Minute:   minute,
			OwnGoal:  parseBool(h.get(row, "own_goal")),
			Penalty:  parseBool(h.get(row, "penalty")),
		})
	}
	return out, nil
}

// ReadShootouts parses shootouts.csv.
func ReadShootouts(r io.Reader) ([]model.Shootout, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "date", "home_team", "away_team", "winner")
	if err != nil {
		return nil, err
	}
	var out []model.Shootout
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d, err := parseDate(h.get(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: date: %w", line, err)
		}
		first := h.get(row, "first_shooter")
		if missing(first) {
			first = ""
		}
		out = append(out, model.Shootout{
			Date:         d,
			HomeTeam:     h.get(row, "home_team"),
			AwayTeam:     h.get(row, "away_team"),
			Winner:       h.get(row, "winner"),
			FirstShooter: first,
		})
	}
	return out, nil
}

// ReadLocations parses a country,latitude,longitude table. The short column
// names lat and lon are accepted too.
func ReadLocations(r io.Reader) ([]model.Location, error) {
	cr := newReader(r)
	h, err := readHeader(cr, "country")
	if err != nil {
		return nil, err
	}
	latCol, lonCol := "latitude", "longitude"
	if _, ok := h[latCol]; !ok {
		latCol, lonCol = "lat", "lon"
	}
	var out []model.Location
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		lat, err := strconv.ParseFloat(h.get(row, latCol), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", line, err)
		}
		lon, err := strconv.ParseFloat(h.get(row, lonCol), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", line, err)
		}
		out = append(out, model.Location{Country: h.get(row, "country"), Latitude: lat, Longitude: lon})
	}
	return out, nil
}
