package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

func (l Line) String() string {
	return fmt.Sprintf("y = %.4fx %+.4f", l.Slope, l.Intercept)
}

// EvaluateLine returns l.At(x) for every x, in order.
func EvaluateLine(xs []float64, l Line) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.At(x)
	}
	return out
}

const badLength = "regression: slice length mismatch"

// TotalSquaredError is the sum of squared residuals of ys against l over every
// point. It panics if xs and ys differ in length.
func TotalSquaredError(xs, ys []float64, l Line) float64 {
	if len(xs) != len(ys) {
		panic(badLength)
	}
	var s float64
	for i := range xs {
		d := ys[i] - l.At(xs[i])
		s += d * d
	}
	return s
}

// RMSE is the root of the mean squared residual; zero for an empty dataset.
// Like TotalSquaredError it panics on columns of different lengths.
func RMSE(xs, ys []float64, l Line) float64 {
	if len(xs) == 0 && len(ys) == 0 {
		return 0
	}
	return math.Sqrt(TotalSquaredError(xs, ys, l) / float64(len(xs)))
}

// RSquared is the coefficient of determination of l over the data. It can be
// negative for lines worse than the mean of ys.
func RSquared(xs, ys []float64, l Line) float64 {
	if len(ys) == 0 || len(xs) != len(ys) {
		return math.NaN()
	}
	return stat.RSquaredFrom(EvaluateLine(xs, l), ys, nil)
}
