package regression

import "math"

// GradientDescent minimises the mean squared error by batch gradient steps
// starting from Start. It converges to the OLS line for a small enough
// LearningRate and is kept around to show how the optimum is approached.
type GradientDescent struct {
	LearningRate float64
	Iterations   int
	Tolerance    float64
	Start        Line

	Fitted  Line
	Steps   int
	History []float64 // total squared error before each step
}

func NewGradientDescent() *GradientDescent {
	return &GradientDescent{LearningRate: 0.02, Iterations: 20000, Tolerance: 1e-10, Start: Line{Slope: 1, Intercept: 1}}
}

func (gd *GradientDescent) Name() string { return "GradientDescent" }

func (gd *GradientDescent) Fit(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	if len(xs) == 0 {
		return ErrEmptyDataset
	}
	n := float64(len(xs))
	l := gd.Start
	gd.History = gd.History[:0]
	gd.Steps = 0
	for it := 0; it < gd.Iterations; it++ {
		var dm, db, sse float64
		for i := range xs {
			r := ys[i] - l.At(xs[i])
			sse += r * r
			dm -= xs[i] * r
			db -= r
		}
		gd.History = append(gd.History, sse)
		if math.IsNaN(sse) || math.IsInf(sse, 0) {
			gd.Fitted = l
			return ErrDiverged
		}
		stepM := gd.LearningRate * 2 / n * dm
		stepB := gd.LearningRate * 2 / n * db
		l.Slope -= stepM
		l.Intercept -= stepB
		gd.Steps++
		if math.Hypot(stepM, stepB) < gd.Tolerance {
			break
		}
	}
	gd.Fitted = l
	return nil
}

func (gd *GradientDescent) Predict(xs []float64) []float64 { return EvaluateLine(xs, gd.Fitted) }

func (gd *GradientDescent) Line() Line { return gd.Fitted }
