// Package config builds the immutable process configuration from the
// environment. It is the only package that reads environment variables;
// everything downstream receives the Config value.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Render modes.
const (
	ModeGrid = "grid"
	ModeList = "list"
)

// Emphasis treatments for the catchable column.
const (
	EmphasisThick = "thick"
	EmphasisFrame = "frame"
	EmphasisScale = "scale"
)

// Config holds all settings for the board. Loaded once at startup and
// never mutated afterwards.
type Config struct {
	StopID   string `validate:"required"`
	FeedBase string `validate:"required,url"`

	RenderMode string `validate:"oneof=grid list"`
	Emphasis   string `validate:"oneof=thick frame scale"`

	WalkMinutes   int `validate:"min=0"`
	FastWindowMin int `validate:"min=0"`

	DayRefresh   time.Duration `validate:"min=0"`
	FastRefresh  time.Duration `validate:"min=0"`
	QuietRefresh time.Duration `validate:"min=0"`

	QuietStart int `validate:"min=0,max=23"`
	QuietEnd   int `validate:"min=0,max=23"`
}

// Load reads configuration from environment variables. Unset variables
// fall back to defaults; set-but-invalid values are a startup error,
// never silently replaced.
func Load() (*Config, error) {
	cfg := &Config{
		StopID:     envString("OXON_STOP", "340000022GEO"),
		FeedBase:   envString("OXON_URL", "https://oxontime.com"),
		RenderMode: strings.ToLower(envString("MODE", ModeGrid)),
		Emphasis:   strings.ToLower(envString("BOARD_EMPHASIS", EmphasisThick)),
	}

	var err error
	if cfg.WalkMinutes, err = envInt("WALK_MIN", 5); err != nil {
		return nil, err
	}
	if cfg.FastWindowMin, err = envInt("FAST_WINDOW_MIN", 10); err != nil {
		return nil, err
	}
	if cfg.DayRefresh, err = envSeconds("DAY_REFRESH", 180); err != nil {
		return nil, err
	}
	if cfg.FastRefresh, err = envSeconds("FAST_REFRESH", 60); err != nil {
		return nil, err
	}
	if cfg.QuietRefresh, err = envSeconds("QUIET_REFRESH", 1800); err != nil {
		return nil, err
	}
	if cfg.QuietStart, err = envInt("QUIET_START", 22); err != nil {
		return nil, err
	}
	if cfg.QuietEnd, err = envInt("QUIET_END", 6); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and returns the first violation.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, v)
	}
	return n, nil
}

func envSeconds(key string, def int) (time.Duration, error) {
	n, err := envInt(key, def)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
