package regression

import (
	"fmt"
	"math"
)

type Fit int

const (
	Excellent Fit = iota
	Acceptable
	Poor
)

func (f Fit) String() string {
	switch f {
	case Excellent:
		return "Excellent"
	case Acceptable:
		return "Acceptable"
	case Poor:
		return "Poor"
	default:
		return fmt.Sprintf("Fit(%d)", int(f))
	}
}

func (f Fit) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Fit) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Excellent":
		*f = Excellent
	case "Acceptable":
		*f = Acceptable
	case "Poor":
		*f = Poor
	default:
		return fmt.Errorf("regression: unknown fit label %q", b)
	}
	return nil
}

// Thresholds bound the Excellent and Acceptable bands of total squared error.
type Thresholds struct {
	Good       float64 `json:"good"`
	Acceptable float64 `json:"acceptable"`
}

func DefaultThresholds() Thresholds { return Thresholds{Good: 50, Acceptable: 200} }

func (t Thresholds) Validate() error {
	if math.IsNaN(t.Good) || math.IsNaN(t.Acceptable) || t.Good < 0 || t.Good > t.Acceptable {
		return fmt.Errorf("regression: thresholds must satisfy 0 <= good (%v) <= acceptable (%v)", t.Good, t.Acceptable)
	}
	return nil
}

// Classify labels a total error with half-open bands: [0, Good) is Excellent,
// [Good, Acceptable) is Acceptable, anything else (NaN included) is Poor.
func Classify(total float64, t Thresholds) Fit {
	switch {
	case total < t.Good:
		return Excellent
	case total < t.Acceptable:
		return Acceptable
	default:
		return Poor
	}
}
