package data_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linfit/internal/data"
)

func TestLinspaceEndpoints(t *testing.T) {
	xs := data.Linspace(0, 10, 50)
	require.Len(t, xs, 50)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 10.0, xs[49])
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, 10.0/49.0, xs[i]-xs[i-1], 1e-12)
	}

	assert.Equal(t, []float64{3}, data.Linspace(3, 7, 1))
	assert.Empty(t, data.Linspace(0, 1, 0))
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := data.DefaultGenConfig()
	a, err := data.Generate(data.DefaultSeed, cfg)
	require.NoError(t, err)
	b, err := data.Generate(data.DefaultSeed, cfg)
	require.NoError(t, err)

	require.Equal(t, 50, a.Len())
	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := data.Generate(7, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "different seeds should give different noise")
}

func TestGenerateNoiselessFollowsLine(t *testing.T) {
	cfg := data.DefaultGenConfig()
	cfg.NoiseStd = 0
	ds, err := data.Generate(1, cfg)
	require.NoError(t, err)
	for _, p := range ds.Points() {
		assert.InDelta(t, 3*p.X+5, p.Y, 1e-12)
	}
}

func TestGenerateNoiseIsPlausible(t *testing.T) {
	ds, err := data.Generate(data.DefaultSeed, data.DefaultGenConfig())
	require.NoError(t, err)
	var sum, sq float64
	for _, p := range ds.Points() {
		r := p.Y - (3*p.X + 5)
		sum += r
		sq += r * r
	}
	n := float64(ds.Len())
	// 50 draws of N(0, 2): loose bounds on sample mean and variance.
	assert.InDelta(t, 0, sum/n, 1.5)
	assert.InDelta(t, 4, sq/n, 3)
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*data.GenConfig){
		"n":       func(c *data.GenConfig) { c.N = 0 },
		"x range": func(c *data.GenConfig) { c.XMin, c.XMax = 5, 1 },
		"noise":   func(c *data.GenConfig) { c.NoiseStd = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := data.DefaultGenConfig()
			mutate(&cfg)
			_, err := data.Generate(1, cfg)
			var ce *data.ConfigError
			require.True(t, errors.As(err, &ce))
		})
	}
}

func TestDatasetIsImmutable(t *testing.T) {
	src := []data.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	ds := data.NewDataset(src)
	src[0].Y = 100
	pts := ds.Points()
	pts[1].Y = 100

	xs, ys := ds.Columns()
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}

func TestWriteCSV(t *testing.T) {
	ds := data.NewDataset([]data.Point{{X: 0, Y: 5}, {X: 0.5, Y: 6.25}})
	var buf bytes.Buffer
	require.NoError(t, data.WriteCSV(&buf, ds))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}, {"0", "5"}, {"0.5", "6.25"}}, rows)

	path := filepath.Join(t.TempDir(), "out", "dataset.csv")
	require.NoError(t, data.WriteCSVFile(path, ds))
	assert.FileExists(t, path)
}
