package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"linfit/internal/data"
	"linfit/internal/regression"
	"linfit/internal/session"
)

// Config is the service configuration, read from the environment.
type Config struct {
	Port       string `validate:"required,numeric"`
	APIKey     string
	GinMode    string `validate:"omitempty,oneof=debug release test"`
	Seed       uint64
	N          int           `validate:"min=2,max=100000"`
	Good       float64       `validate:"gte=0"`
	Acceptable float64       `validate:"gtefield=Good"`
	SessionTTL time.Duration `validate:"gte=0"`
	SessionMax int           `validate:"gte=0"`
}

func Default() Config {
	t := regression.DefaultThresholds()
	return Config{
		Port:       "8080",
		Seed:       data.DefaultSeed,
		N:          data.DefaultGenConfig().N,
		Good:       t.Good,
		Acceptable: t.Acceptable,
		SessionTTL: session.DefaultTTL,
		SessionMax: session.DefaultMaxSessions,
	}
}

func (c Config) Thresholds() regression.Thresholds {
	return regression.Thresholds{Good: c.Good, Acceptable: c.Acceptable}
}

func (c Config) GenConfig() data.GenConfig {
	g := data.DefaultGenConfig()
	g.N = c.N
	return g
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads PORT, API_KEY, GIN_MODE, DATA_SEED, DATA_N, THRESHOLD_GOOD,
// THRESHOLD_ACCEPTABLE, SESSION_TTL and SESSION_MAX on top of Default. A zero
// SESSION_TTL or SESSION_MAX turns that limit off.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	c := Default()
	if v := getenv("PORT"); v != "" {
		c.Port = v
	}
	c.APIKey = getenv("API_KEY")
	c.GinMode = getenv("GIN_MODE")

	var err error
	if v := getenv("DATA_SEED"); v != "" {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return c, fmt.Errorf("config: DATA_SEED: %w", err)
		}
	}
	if v := getenv("DATA_N"); v != "" {
		if c.N, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("config: DATA_N: %w", err)
		}
	}
	if v := getenv("THRESHOLD_GOOD"); v != "" {
		if c.Good, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("config: THRESHOLD_GOOD: %w", err)
		}
	}
	if v := getenv("THRESHOLD_ACCEPTABLE"); v != "" {
		if c.Acceptable, err = strconv.ParseFloat(v, 64); err != nil {
			return c, fmt.Errorf("config: THRESHOLD_ACCEPTABLE: %w", err)
		}
	}
	if v := getenv("SESSION_TTL"); v != "" {
		if c.SessionTTL, err = time.ParseDuration(v); err != nil {
			return c, fmt.Errorf("config: SESSION_TTL: %w", err)
		}
	}
	if v := getenv("SESSION_MAX"); v != "" {
		if c.SessionMax, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("config: SESSION_MAX: %w", err)
		}
	}
	if err := validate.Struct(c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
