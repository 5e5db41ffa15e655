package storage

import (
	"database/sql"
	"fmt"
)

// Overview summarises the stored dataset.
type Overview struct {
	Matches     int            `db:"matches"`
	Played      int            `db:"played"`
	Teams       int            `db:"teams"`
	Tournaments int            `db:"tournaments"`
	Goals       int            `db:"goals"`
	Shootouts   int            `db:"shootouts"`
	FirstDate   sql.NullString `db:"first_date"`
	LastDate    sql.NullString `db:"last_date"`
}

// TournamentRow is a tournament with its stored match count.
type TournamentRow struct {
	Tournament string `db:"tournament"`
	Matches    int    `db:"matches"`
}

// Overview returns record counts and the date span of the stored dataset.
func (db *DB) Overview() (Overview, error) {
	var o Overview
	err := db.conn.Get(&o, `
		SELECT
			(SELECT COUNT(*) FROM results) AS matches,
			(SELECT COUNT(*) FROM results WHERE home_score IS NOT NULL AND away_score IS NOT NULL) AS played,
			(SELECT COUNT(*) FROM (SELECT home_team FROM results UNION SELECT away_team FROM results)) AS teams,
			(SELECT COUNT(DISTINCT tournament) FROM results) AS tournaments,
			(SELECT COUNT(*) FROM goalscorers) AS goals,
			(SELECT COUNT(*) FROM shootouts) AS shootouts,
			(SELECT MIN(date) FROM results) AS first_date,
			(SELECT MAX(date) FROM results) AS last_date`)
	if err != nil {
		return Overview{}, fmt.Errorf("query overview: %w", err)
	}
	return o, nil
}

// TopTournaments returns the tournaments with the most stored matches.
func (db *DB) TopTournaments(limit int) ([]TournamentRow, error) {
	var out []TournamentRow
	err := db.conn.Select(&out, `
		SELECT tournament, COUNT(*) AS matches
		FROM results
		GROUP BY tournament
		ORDER BY matches DESC, tournament
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tournaments: %w", err)
	}
	return out, nil
}

// QueryRaw runs an arbitrary query and returns column names and every row
// rendered as strings. NULL is rendered as "NULL".
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Queryx(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
