package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linfit/internal/regression"
)

func TestErrorBarColour(t *testing.T) {
	th := regression.DefaultThresholds()
	cases := []struct {
		total float64
		want  color.Color
	}{
		{0, goodColor},
		{49.9, goodColor},
		{199.9, goodColor},
		{200.0, badColor},
		{1e6, badColor},
	}
	for _, c := range cases {
		bar, err := errorBar(c.total, th)
		require.NoError(t, err)
		assert.Equal(t, c.want, bar.Color, "total=%v", c.total)
		assert.True(t, bar.Horizontal)
	}

	bar, err := errorBar(25, regression.Thresholds{Good: 5, Acceptable: 20})
	require.NoError(t, err)
	assert.Equal(t, badColor, bar.Color, "the cut-off follows the configured Acceptable bound")
}
