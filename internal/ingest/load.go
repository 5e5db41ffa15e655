package ingest

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/sourcegraph/conc/pool"

	"github.com/pable/go-football-stats/internal/model"
)

// File base names inside a dataset directory.
const (
	ResultsFile   = "results.csv"
	GoalsFile     = "goalscorers.csv"
	ShootoutsFile = "shootouts.csv"
	LocationsFile = "locations.csv"
)

//go:embed countries.csv
var defaultLocationsCSV []byte

// Dataset is everything read from one dataset directory.
type Dataset struct {
	Matches   []model.Match
	Goals     []model.GoalEvent
	Shootouts []model.Shootout
	Locations []model.Location
}

// DefaultLocations returns the built-in country coordinates table.
func DefaultLocations() ([]model.Location, error) {
	return ReadLocations(bytes.NewReader(defaultLocationsCSV))
}

// LoadDir reads a dataset directory. results.csv is required; goalscorers,
// shootouts and locations are optional, and the built-in locations are used
// when locations.csv is absent. The files are parsed concurrently.
func LoadDir(dir string) (*Dataset, error) {
	results, ok := findFile(dir, ResultsFile)
	if !ok {
		return nil, fmt.Errorf("%s not found in %s", ResultsFile, dir)
	}

	var ds Dataset
	p := pool.New().WithErrors()
	p.Go(func() error {
		return readInto(results, ReadMatches, &ds.Matches)
	})
	if path, ok := findFile(dir, GoalsFile); ok {
		p.Go(func() error { return readInto(path, ReadGoals, &ds.Goals) })
	}
	if path, ok := findFile(dir, ShootoutsFile); ok {
		p.Go(func() error { return readInto(path, ReadShootouts, &ds.Shootouts) })
	}
	if path, ok := findFile(dir, LocationsFile); ok {
		p.Go(func() error { return readInto(path, ReadLocations, &ds.Locations) })
	} else {
		p.Go(func() error {
			locs, err := DefaultLocations()
			ds.Locations = locs
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func readInto[T any](path string, read func(io.Reader) ([]T, error), dst *[]T) error {
	rc, err := openFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()
	rows, err := read(rc)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	*dst = rows
	return nil
}
