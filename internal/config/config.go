// Package config loads runtime configuration from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/pable/go-football-stats/internal/ingest"
	"github.com/pable/go-football-stats/internal/logging"
)

// Config stores runtime configuration for the CLI and the HTTP server.
type Config struct {
	DBPath        string        `validate:"required"`
	DataDir       string        `validate:"required"`
	DefaultTeam   string        `validate:"required"`
	YearFloor     int           `validate:"min=1800,max=2200"`
	TopScorers    int           `validate:"min=1"`
	RecentMatches int           `validate:"min=1"`
	HTTPAddr      string        `validate:"required"`
	CORSOrigins   []string      `validate:"dive,required"`
	ReadTimeout   time.Duration `validate:"gt=0"`
	WriteTimeout  time.Duration `validate:"gt=0"`
	DatasetURL    string        `validate:"required,url"`
	FetchTimeout  time.Duration `validate:"gt=0"`
	LogLevel      logging.Level
	LogFormat     string `validate:"oneof=console json"`
}

var validate = validator.New()

// Load reads .env from the working directory if present, then the
// environment, and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	home := filepath.Join(userHome(), ".footstats")

	yearFloor, err := getEnvAsInt("FOOTSTATS_YEAR_FLOOR", 1980)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_YEAR_FLOOR: %w", err)
	}
	topScorers, err := getEnvAsInt("FOOTSTATS_TOP_SCORERS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_TOP_SCORERS: %w", err)
	}
	recent, err := getEnvAsInt("FOOTSTATS_RECENT_MATCHES", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_RECENT_MATCHES: %w", err)
	}
	readTimeout, err := time.ParseDuration(getEnv("FOOTSTATS_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("FOOTSTATS_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_WRITE_TIMEOUT: %w", err)
	}
	fetchTimeout, err := time.ParseDuration(getEnv("FOOTSTATS_FETCH_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTSTATS_FETCH_TIMEOUT: %w", err)
	}

	cfg := Config{
		DBPath:        getEnv("FOOTSTATS_DB", filepath.Join(home, "footstats.db")),
		DataDir:       getEnv("FOOTSTATS_DATA_DIR", filepath.Join(home, "data")),
		DefaultTeam:   strings.TrimSpace(getEnv("FOOTSTATS_DEFAULT_TEAM", "Netherlands")),
		YearFloor:     yearFloor,
		TopScorers:    topScorers,
		RecentMatches: recent,
		HTTPAddr:      getEnv("FOOTSTATS_HTTP_ADDR", ":8080"),
		CORSOrigins:   splitCSV(getEnv("FOOTSTATS_CORS_ORIGINS", "*")),
		ReadTimeout:   readTimeout,
		WriteTimeout:  writeTimeout,
		DatasetURL:    getEnv("FOOTSTATS_DATASET_URL", ingest.DefaultBaseURL),
		FetchTimeout:  fetchTimeout,
		LogLevel:      logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", logging.FormatConsole)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints. Callers that override fields after Load
// should validate again.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
