package config

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linfit/internal/regression"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	c, err := load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, regression.DefaultThresholds(), c.Thresholds())
	assert.Equal(t, 50, c.GenConfig().N)
	assert.Equal(t, uint64(42), c.Seed)
}

func TestLoadOverrides(t *testing.T) {
	c, err := load(env(map[string]string{
		"PORT":                 "9090",
		"API_KEY":              "secret",
		"GIN_MODE":             "release",
		"DATA_SEED":            "7",
		"DATA_N":               "100",
		"THRESHOLD_GOOD":       "5",
		"THRESHOLD_ACCEPTABLE": "20",
		"SESSION_TTL":          "90s",
		"SESSION_MAX":          "3",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "secret", c.APIKey)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, 100, c.N)
	assert.Equal(t, regression.Thresholds{Good: 5, Acceptable: 20}, c.Thresholds())
	assert.Equal(t, 90*time.Second, c.SessionTTL)
	assert.Equal(t, 3, c.SessionMax)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"unparsable seed": {"DATA_SEED": "-1"},
		"unparsable n":    {"DATA_N": "many"},
		"bad float":       {"THRESHOLD_GOOD": "x"},
		"bad ttl":         {"SESSION_TTL": "soon"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(env(m))
			require.Error(t, err)
		})
	}

	invalid := map[string]map[string]string{
		"inverted thresholds": {"THRESHOLD_GOOD": "300", "THRESHOLD_ACCEPTABLE": "200"},
		"negative good":       {"THRESHOLD_GOOD": "-1"},
		"tiny dataset":        {"DATA_N": "1"},
		"port":                {"PORT": "http"},
		"gin mode":            {"GIN_MODE": "verbose"},
		"negative ttl":        {"SESSION_TTL": "-1m"},
		"negative max":        {"SESSION_MAX": "-1"},
	}
	for name, m := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := load(env(m))
			var ve validator.ValidationErrors
			require.True(t, errors.As(err, &ve), "%v", err)
		})
	}
}
