package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const resultsCSV = `date,home_team,away_team,home_score,away_score,tournament,city,country,neutral
1872-11-30,Scotland,England,0,0,Friendly,Glasgow,Scotland,FALSE
1988-06-25,Soviet Union,Netherlands,0,2,UEFA Euro,Munich,Germany,TRUE
2099-06-01,Netherlands,Spain,NA,NA,Friendly,Madrid,Spain,FALSE
`

const goalsCSV = `date,home_team,away_team,team,scorer,minute,own_goal,penalty
1988-06-25,Soviet Union,Netherlands,Netherlands,Ruud Gullit,32,FALSE,FALSE
1988-06-25,Soviet Union,Netherlands,Netherlands,Marco van Basten,NA,FALSE,FALSE
`

const shootoutsCSV = `date,home_team,away_team,winner,first_shooter
2004-06-26,Sweden,Netherlands,Netherlands,NA
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadMatches(t *testing.T) {
	ms, err := ReadMatches(strings.NewReader(resultsCSV))
	if err != nil {
		t.Fatalf("ReadMatches: %v", err)
	}
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	for i, m := range ms {
		if m.ID != i {
			t.Errorf("match %d: ID = %d", i, m.ID)
		}
	}
	m := ms[1]
	if m.HomeTeam != "Soviet Union" || m.AwayTeam != "Netherlands" {
		t.Errorf("teams = %q vs %q", m.HomeTeam, m.AwayTeam)
	}
	if m.HomeScore == nil || *m.HomeScore != 0 || m.AwayScore == nil || *m.AwayScore != 2 {
		t.Errorf("score = %v-%v, want 0-2", m.HomeScore, m.AwayScore)
	}
	if !m.Neutral || m.Country != "Germany" || m.City != "Munich" {
		t.Errorf("venue = %+v", m)
	}
	if ms[2].HomeScore != nil || ms[2].AwayScore != nil {
		t.Error("NA scores should be missing")
	}
	if ms[2].Played() {
		t.Error("unscored fixture reported as played")
	}
}

func TestReadMatches_ColumnOrder(t *testing.T) {
	in := "\ufefftournament,away_team,home_team,date,away_score,home_score\n" +
		"Friendly,England,Scotland,1873-03-08,4,2\n"
	ms, err := ReadMatches(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadMatches: %v", err)
	}
	m := ms[0]
	if m.HomeTeam != "Scotland" || *m.HomeScore != 2 || *m.AwayScore != 4 {
		t.Errorf("got %+v", m)
	}
}

func TestReadMatches_MissingColumn(t *testing.T) {
	_, err := ReadMatches(strings.NewReader("date,home_team,away_team\n"))
	if err == nil || !strings.Contains(err.Error(), "home_score") {
		t.Errorf("err = %v, want missing home_score", err)
	}
}

func TestReadMatches_BadDate(t *testing.T) {
	in := "date,home_team,away_team,home_score,away_score,tournament\n30/11/1872,A,B,1,0,Friendly\n"
	_, err := ReadMatches(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2 date error", err)
	}
}

func TestReadGoals(t *testing.T) {
	gs, err := ReadGoals(strings.NewReader(goalsCSV))
	if err != nil {
		t.Fatalf("ReadGoals: %v", err)
	}
	if len(gs) != 2 {
		t.Fatalf("got %d goals, want 2", len(gs))
	}
	if gs[0].Minute == nil || *gs[0].Minute != 32 {
		t.Errorf("minute = %v, want 32", gs[0].Minute)
	}
	if gs[1].Minute != nil {
		t.Errorf("NA minute = %v, want nil", *gs[1].Minute)
	}
	if gs[0].Team != "Netherlands" || gs[0].Scorer != "Ruud Gullit" {
		t.Errorf("got %+v", gs[0])
	}
}

func TestReadShootouts(t *testing.T) {
	ss, err := ReadShootouts(strings.NewReader(shootoutsCSV))
	if err != nil {
		t.Fatalf("ReadShootouts: %v", err)
	}
	if len(ss) != 1 || ss[0].Winner != "Netherlands" || ss[0].FirstShooter != "" {
		t.Errorf("got %+v", ss)
	}
}

func TestReadLocations_ShortColumns(t *testing.T) {
	ls, err := ReadLocations(strings.NewReader("country,lat,lon\nBrazil,-14.2,-51.9\n"))
	if err != nil {
		t.Fatalf("ReadLocations: %v", err)
	}
	if len(ls) != 1 || ls[0].Latitude != -14.2 || ls[0].Longitude != -51.9 {
		t.Errorf("got %+v", ls)
	}
}

func TestDefaultLocations(t *testing.T) {
	ls, err := DefaultLocations()
	if err != nil {
		t.Fatalf("DefaultLocations: %v", err)
	}
	found := false
	for _, l := range ls {
		if l.Country == "Netherlands" {
			found = true
		}
	}
	if !found {
		t.Error("Netherlands missing from built-in locations")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ResultsFile), resultsCSV)
	writeFile(t, filepath.Join(dir, ShootoutsFile), shootoutsCSV)

	// goalscorers shipped gzip-compressed
	f, err := os.Create(filepath.Join(dir, GoalsFile+".gz"))
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(goalsCSV)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	ds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(ds.Matches) != 3 || len(ds.Goals) != 2 || len(ds.Shootouts) != 1 {
		t.Errorf("counts = %d/%d/%d", len(ds.Matches), len(ds.Goals), len(ds.Shootouts))
	}
	if len(ds.Locations) == 0 {
		t.Error("expected built-in locations when locations.csv is absent")
	}
}

func TestLoadDir_Zstd(t *testing.T) {
	dir := t.TempDir()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, ResultsFile+".zst"), string(enc.EncodeAll([]byte(resultsCSV), nil)))
	enc.Close()

	ds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(ds.Matches) != 3 {
		t.Errorf("got %d matches, want 3", len(ds.Matches))
	}
	if len(ds.Goals) != 0 {
		t.Errorf("goals without goalscorers.csv: %d", len(ds.Goals))
	}
}

func TestLoadDir_MissingResults(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for directory without results.csv")
	}
}
