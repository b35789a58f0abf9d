package session

import (
	"fmt"
	"strconv"

	"linfit/internal/data"
	"linfit/internal/regression"
)

// Engine holds what every session shares: the dataset, its best-fit line and
// the label thresholds. It is immutable after NewEngine.
type Engine struct {
	dataset     data.Dataset
	xs, ys      []float64
	best        regression.Line
	bestErr     float64
	thresholds  regression.Thresholds
	fingerprint string
}

func NewEngine(ds data.Dataset, t regression.Thresholds) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	xs, ys := ds.Columns()
	best, err := regression.FitBestLine(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("fit best line: %w", err)
	}
	return &Engine{
		dataset:     ds,
		xs:          xs,
		ys:          ys,
		best:        best,
		bestErr:     regression.TotalSquaredError(xs, ys, best),
		thresholds:  t,
		fingerprint: strconv.FormatUint(ds.Fingerprint(), 16),
	}, nil
}

func (e *Engine) Dataset() data.Dataset             { return e.dataset }
func (e *Engine) BestLine() regression.Line         { return e.best }
func (e *Engine) Thresholds() regression.Thresholds { return e.thresholds }

// Snapshot is one recomputation's output, ready for a renderer.
type Snapshot struct {
	Points      []data.Point    `json:"points"`
	UserLine    regression.Line `json:"user_line"`
	UserYs      []float64       `json:"user_ys"`
	BestLine    regression.Line `json:"best_line"`
	BestYs      []float64       `json:"best_ys"`
	TotalError  float64         `json:"total_error"`
	BestError   float64         `json:"best_error"`
	Label       regression.Fit  `json:"label"`
	RSquared    float64         `json:"r_squared"`
	RMSE        float64         `json:"rmse"`
	Fingerprint string          `json:"fingerprint"`
}

// Recompute evaluates s against the shared dataset. It never mutates e or s.
func (e *Engine) Recompute(s State) Snapshot {
	total := regression.TotalSquaredError(e.xs, e.ys, s.Line)
	return Snapshot{
		Points:      e.dataset.Points(),
		UserLine:    s.Line,
		UserYs:      regression.EvaluateLine(e.xs, s.Line),
		BestLine:    e.best,
		BestYs:      regression.EvaluateLine(e.xs, e.best),
		TotalError:  total,
		BestError:   e.bestErr,
		Label:       regression.Classify(total, e.thresholds),
		RSquared:    regression.RSquared(e.xs, e.ys, s.Line),
		RMSE:        regression.RMSE(e.xs, e.ys, s.Line),
		Fingerprint: e.fingerprint,
	}
}
