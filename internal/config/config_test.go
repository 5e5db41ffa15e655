package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-football-stats/internal/ingest"
	"github.com/pable/go-football-stats/internal/logging"
)

// chdirTemp moves the test into an empty directory so a developer's .env
// does not leak into Load.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", "/home/fan")
	for _, k := range []string{"FOOTSTATS_DB", "FOOTSTATS_DEFAULT_TEAM", "FOOTSTATS_YEAR_FLOOR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Netherlands", cfg.DefaultTeam)
	assert.Equal(t, 1980, cfg.YearFloor)
	assert.Equal(t, 10, cfg.TopScorers)
	assert.Equal(t, 10, cfg.RecentMatches)
	assert.Equal(t, filepath.Join("/home/fan", ".footstats", "footstats.db"), cfg.DBPath)
	assert.Equal(t, ingest.DefaultBaseURL, cfg.DatasetURL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
	assert.Equal(t, logging.FormatConsole, cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FOOTSTATS_DB", "/tmp/x.db")
	t.Setenv("FOOTSTATS_DEFAULT_TEAM", " Brazil ")
	t.Setenv("FOOTSTATS_YEAR_FLOOR", "1950")
	t.Setenv("FOOTSTATS_CORS_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("FOOTSTATS_FETCH_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "Brazil", cfg.DefaultTeam)
	assert.Equal(t, 1950, cfg.YearFloor)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logging.FormatJSON, cfg.LogFormat)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	// godotenv never overrides a variable that is set, even when empty.
	t.Setenv("FOOTSTATS_DEFAULT_TEAM", "")
	os.Unsetenv("FOOTSTATS_DEFAULT_TEAM")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FOOTSTATS_DEFAULT_TEAM=Scotland\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Scotland", cfg.DefaultTeam)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad int":        {"FOOTSTATS_TOP_SCORERS", "ten"},
		"zero scorers":   {"FOOTSTATS_TOP_SCORERS", "0"},
		"floor too low":  {"FOOTSTATS_YEAR_FLOOR", "1200"},
		"bad duration":   {"FOOTSTATS_FETCH_TIMEOUT", "soon"},
		"zero timeout":   {"FOOTSTATS_READ_TIMEOUT", "0s"},
		"bad url":        {"FOOTSTATS_DATASET_URL", "not a url"},
		"unknown format": {"LOG_FORMAT", "xml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
