package session

import (
	"fmt"
	"math"

	"linfit/internal/regression"
)

const (
	SlopeMin     = -10.0
	SlopeMax     = 10.0
	InterceptMin = -20.0
	InterceptMax = 20.0
	Step         = 0.1

	DefaultSlope     = 1.0
	DefaultIntercept = 1.0
)

// InvalidInputError reports a slope or intercept outside its allowed range.
type InvalidInputError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("session: %s %v outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

func Validate(l regression.Line) error {
	if !within(l.Slope, SlopeMin, SlopeMax) {
		return &InvalidInputError{Field: "slope", Value: l.Slope, Min: SlopeMin, Max: SlopeMax}
	}
	if !within(l.Intercept, InterceptMin, InterceptMax) {
		return &InvalidInputError{Field: "intercept", Value: l.Intercept, Min: InterceptMin, Max: InterceptMax}
	}
	return nil
}

// Clamp pulls both parameters into range. NaN has no nearest bound and is
// returned unchanged; run Validate afterwards.
func Clamp(l regression.Line) regression.Line {
	return regression.Line{
		Slope:     clamp(l.Slope, SlopeMin, SlopeMax),
		Intercept: clamp(l.Intercept, InterceptMin, InterceptMax),
	}
}

func within(v, lo, hi float64) bool { return !math.IsNaN(v) && v >= lo && v <= hi }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Max(lo, math.Min(hi, v))
}
