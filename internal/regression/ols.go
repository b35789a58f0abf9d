package regression

import "gonum.org/v1/gonum/floats"

// OLS is the ordinary least squares line, solved with the closed-form normal
// equations for one predictor.
type OLS struct {
	Fitted Line
}

func NewOLS() *OLS { return &OLS{} }

func (o *OLS) Name() string { return "OLS" }

func (o *OLS) Fit(xs, ys []float64) error {
	l, err := FitBestLine(xs, ys)
	if err != nil {
		return err
	}
	o.Fitted = l
	return nil
}

func (o *OLS) Predict(xs []float64) []float64 { return EvaluateLine(xs, o.Fitted) }

func (o *OLS) Line() Line { return o.Fitted }

// FitBestLine returns the line minimising the total squared error:
//
//	m = (N·Σxy − Σx·Σy) / (N·Σx² − (Σx)²)
//	b = (Σy − m·Σx) / N
//
// It returns ErrDegenerateDataset when every x is the same.
func FitBestLine(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return Line{}, ErrEmptyDataset
	}
	if constant(xs) {
		return Line{}, ErrDegenerateDataset
	}
	n := float64(len(xs))
	sx := floats.Sum(xs)
	sy := floats.Sum(ys)
	sxy := floats.Dot(xs, ys)
	sxx := floats.Dot(xs, xs)

	den := n*sxx - sx*sx
	if den == 0 {
		return Line{}, ErrDegenerateDataset
	}
	m := (n*sxy - sx*sy) / den
	b := (sy - m*sx) / n
	return Line{Slope: m, Intercept: b}, nil
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
