package session

import (
	"math"

	"linfit/internal/regression"
)

// State is everything one user owns: the line they are adjusting.
type State struct {
	Line regression.Line
}

func New() *State {
	return &State{Line: regression.Line{Slope: DefaultSlope, Intercept: DefaultIntercept}}
}

// Set replaces the line, or returns an *InvalidInputError and leaves the state alone.
func (s *State) Set(l regression.Line) error {
	if err := Validate(l); err != nil {
		return err
	}
	s.Line = l
	return nil
}

// Nudge moves the line by whole Steps, clamping at the bounds.
func (s *State) Nudge(dSlope, dIntercept int) {
	l := regression.Line{
		Slope:     roundStep(s.Line.Slope + float64(dSlope)*Step),
		Intercept: roundStep(s.Line.Intercept + float64(dIntercept)*Step),
	}
	s.Line = Clamp(l)
}

func (s *State) Reset() { *s = *New() }

// roundStep strips the drift that repeated 0.1 additions leave behind.
func roundStep(v float64) float64 { return math.Round(v*1e9) / 1e9 }
