package config

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	gameconfig "github.com/tomz197/starstrike/internal/game/config"
)

const (
	defaultVariant   = "classic"
	defaultLogLevel  = "info"
	defaultScoreName = ".starstrike-best"
)

// Settings is the host configuration read from the environment.
type Settings struct {
	Variant    gameconfig.Variant
	ScoreFile  string    // Best score file
	LogFile    string    // Empty means the host's default destination
	LogLevel   log.Level // Minimum level written
	Seed       int64     // Zero seeds from the clock
	Fullscreen bool      // Window host only
}

// Load reads Settings from STARSTRIKE_* environment variables.
func Load() (Settings, error) {
	var s Settings
	var err error

	s.Variant, err = gameconfig.Lookup(GetEnv("STARSTRIKE_VARIANT", defaultVariant))
	if err != nil {
		return s, fmt.Errorf("STARSTRIKE_VARIANT: %w", err)
	}

	s.ScoreFile = GetEnv("STARSTRIKE_SCORE_FILE", defaultScoreFile())
	s.LogFile = GetEnv("STARSTRIKE_LOG", "")

	s.LogLevel, err = log.ParseLevel(GetEnv("STARSTRIKE_LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return s, fmt.Errorf("STARSTRIKE_LOG_LEVEL: %w", err)
	}

	if s.Seed, err = GetEnvInt("STARSTRIKE_SEED", 0); err != nil {
		return s, err
	}
	if s.Fullscreen, err = GetEnvBool("STARSTRIKE_FULLSCREEN", false); err != nil {
		return s, err
	}
	return s, nil
}

// defaultScoreFile keeps the best score in the home directory, or the
// working directory when there is none.
func defaultScoreFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultScoreName
	}
	return filepath.Join(home, defaultScoreName)
}

// Rand returns the random source for the configured seed.
func (s Settings) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewLogger creates a logger writing to w at the configured level.
func (s Settings) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           s.LogLevel,
		Prefix:          "starstrike",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
