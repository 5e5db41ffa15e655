package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/go-football-stats/internal/dataset"
	"github.com/pable/go-football-stats/internal/ingest"
	"github.com/pable/go-football-stats/internal/model"
)

// ImportInfo describes one completed import.
type ImportInfo struct {
	Source     string
	ImportedAt time.Time
	Matches    int
	Goals      int
	Shootouts  int
}

type matchRow struct {
	ID         int           `db:"id"`
	Date       string        `db:"date"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	Tournament string        `db:"tournament"`
	City       string        `db:"city"`
	Country    string        `db:"country"`
	Neutral    int           `db:"neutral"`
}

type goalRow struct {
	Date     string        `db:"date"`
	HomeTeam string        `db:"home_team"`
	AwayTeam string        `db:"away_team"`
	Team     string        `db:"team"`
	Scorer   string        `db:"scorer"`
	Minute   sql.NullInt64 `db:"minute"`
	OwnGoal  int           `db:"own_goal"`
	Penalty  int           `db:"penalty"`
}

type shootoutRow struct {
	Date         string `db:"date"`
	HomeTeam     string `db:"home_team"`
	AwayTeam     string `db:"away_team"`
	Winner       string `db:"winner"`
	FirstShooter string `db:"first_shooter"`
}

type locationRow struct {
	Country   string  `db:"country"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

// ReplaceDataset deletes every stored record and inserts ds in a single
// transaction. Match ids are the positions in ds.Matches.
func (db *DB) ReplaceDataset(ds *ingest.Dataset, source string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"results", "goalscorers", "shootouts", "locations"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stmt, err := tx.Preparex(`
		INSERT INTO results(id, date, home_team, away_team, home_score, away_score, tournament, city, country, neutral)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, m := range ds.Matches {
		_, err = stmt.Exec(i, m.Date.Format(model.DateLayout), m.HomeTeam, m.AwayTeam,
			m.HomeScore, m.AwayScore, m.Tournament, m.City, m.Country, boolInt(m.Neutral))
		if err != nil {
			return fmt.Errorf("insert result %d: %w", i, err)
		}
	}

	gstmt, err := tx.Preparex(`
		INSERT INTO goalscorers(date, home_team, away_team, team, scorer, minute, own_goal, penalty)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer gstmt.Close()
	for _, g := range ds.Goals {
		_, err = gstmt.Exec(g.Date.Format(model.DateLayout), g.HomeTeam, g.AwayTeam, g.Team, g.Scorer,
			g.Minute, boolInt(g.OwnGoal), boolInt(g.Penalty))
		if err != nil {
			return fmt.Errorf("insert goal by %s: %w", g.Scorer, err)
		}
	}

	sstmt, err := tx.Preparex(`
		INSERT INTO shootouts(date, home_team, away_team, winner, first_shooter)
		VALUES (?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer sstmt.Close()
	for _, s := range ds.Shootouts {
		_, err = sstmt.Exec(s.Date.Format(model.DateLayout), s.HomeTeam, s.AwayTeam, s.Winner, s.FirstShooter)
		if err != nil {
			return fmt.Errorf("insert shootout %s v %s: %w", s.HomeTeam, s.AwayTeam, err)
		}
	}

	for _, l := range ds.Locations {
		_, err = tx.Exec(`INSERT OR REPLACE INTO locations(country, latitude, longitude) VALUES (?,?,?)`,
			l.Country, l.Latitude, l.Longitude)
		if err != nil {
			return fmt.Errorf("insert location %s: %w", l.Country, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO imports(source, imported_at, matches, goals, shootouts) VALUES (?,?,?,?,?)`,
		source, time.Now().UTC().Format(time.RFC3339), len(ds.Matches), len(ds.Goals), len(ds.Shootouts))
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}
	return tx.Commit()
}

// LoadStore reads every stored record and builds a Record Store from them.
func (db *DB) LoadStore() (*dataset.Store, error) {
	var mrows []matchRow
	if err := db.conn.Select(&mrows, `SELECT * FROM results ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	matches := make([]model.Match, 0, len(mrows))
	for _, r := range mrows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", r.ID, err)
		}
		matches = append(matches, model.Match{
			ID:         r.ID,
			Date:       d,
			HomeTeam:   r.HomeTeam,
			AwayTeam:   r.AwayTeam,
			HomeScore:  nullInt(r.HomeScore),
			AwayScore:  nullInt(r.AwayScore),
			Tournament: r.Tournament,
			City:       r.City,
			Country:    r.Country,
			Neutral:    r.Neutral != 0,
		})
	}

	var grows []goalRow
	if err := db.conn.Select(&grows, `
		SELECT date, home_team, away_team, team, scorer, minute, own_goal, penalty
		FROM goalscorers ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select goalscorers: %w", err)
	}
	goals := make([]model.GoalEvent, 0, len(grows))
	for _, r := range grows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("goal by %s: %w", r.Scorer, err)
		}
		goals = append(goals, model.GoalEvent{
			Date:     d,
			HomeTeam: r.HomeTeam,
			AwayTeam: r.AwayTeam,
			Team:     r.Team,
			Scorer:   r.Scorer,
			Minute:   nullInt(r.Minute),
			OwnGoal:  r.OwnGoal != 0,
			Penalty:  r.Penalty != 0,
		})
	}

	var srows []shootoutRow
	if err := db.conn.Select(&srows, `
		SELECT date, home_team, away_team, winner, first_shooter
		FROM shootouts ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select shootouts: %w", err)
	}
	shootouts := make([]model.Shootout, 0, len(srows))
	for _, r := range srows {
		d, err := time.Parse(model.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("shootout %s v %s: %w", r.HomeTeam, r.AwayTeam, err)
		}
		shootouts = append(shootouts, model.Shootout{
			Date:         d,
			HomeTeam:     r.HomeTeam,
			AwayTeam:     r.AwayTeam,
			Winner:       r.Winner,
			FirstShooter: r.FirstShooter,
		})
	}

	var lrows []locationRow
	if err := db.conn.Select(&lrows, `SELECT country, latitude, longitude FROM locations ORDER BY country`); err != nil {
		return nil, fmt.Errorf("select locations: %w", err)
	}
	locations := make([]model.Location, 0, len(lrows))
	for _, r := range lrows {
		locations = append(locations, model.Location{Country: r.Country, Latitude: r.Latitude, Longitude: r.Longitude})
	}

	return dataset.New(matches, goals, shootouts, locations), nil
}

// LastImport returns the most recent import, or nil if nothing was imported.
func (db *DB) LastImport() (*ImportInfo, error) {
	var info ImportInfo
	var at string
	err := db.conn.QueryRow(`
		SELECT source, imported_at, matches, goals, shootouts
		FROM imports ORDER BY id DESC LIMIT 1`).
		Scan(&info.Source, &at, &info.Matches, &info.Goals, &info.Shootouts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	info.ImportedAt, err = time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("parse import time: %w", err)
	}
	return &info, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
