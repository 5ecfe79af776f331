package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
	EmptyCell   = 0

	DefaultFrameRate     = 60
	// longer than the usual initial auto-repeat delay (250ms to 660ms)
	DefaultKeyReleaseGap = 700 * time.Millisecond
	DefaultScreenWidth   = 800
	DefaultScreenHeight  = 600

	baseDropDelay     = 800 * time.Millisecond
	dropDelayStep     = 50 * time.Millisecond
	minDropDelay      = 50 * time.Millisecond
	linesPerLevel     = 10
	hardDropCellBonus = 2
	softDropCellBonus = 1
)

// Environment variables read by LoadConfig.
const (
	envLogLevel      = "BLOCKFALL_LOG_LEVEL"
	envLogFile       = "BLOCKFALL_LOG_FILE"
	envSeed          = "BLOCKFALL_SEED"
	envFrameRate     = "BLOCKFALL_FRAME_RATE"
	envKeyReleaseGap = "BLOCKFALL_KEY_RELEASE_GAP"
)

type Config struct {
	LogLevel      string
	LogFile       string
	Seed          int64
	FrameRate     int
	KeyReleaseGap time.Duration
}

func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		FrameRate:     DefaultFrameRate,
		KeyReleaseGap: DefaultKeyReleaseGap,
	}
}

// LoadConfig starts from DefaultConfig and applies any BLOCKFALL_* overrides
// found in the environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(envSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", envSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(envFrameRate); ok && v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", envFrameRate, v, err)
		}
		if rate <= 0 {
			return cfg, fmt.Errorf("invalid %s %q: must be positive", envFrameRate, v)
		}
		cfg.FrameRate = rate
	}
	if v, ok := lookup(envKeyReleaseGap); ok && v != "" {
		gap, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", envKeyReleaseGap, v, err)
		}
		if gap <= 0 {
			return cfg, fmt.Errorf("invalid %s %q: must be positive", envKeyReleaseGap, v)
		}
		cfg.KeyReleaseGap = gap
	}

	return cfg, nil
}

// FrameDuration is the wait between two frames at the configured rate.
func (c Config) FrameDuration() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}
