package regression

// Model fits a single-predictor line to paired observations.
type Model interface {
	Fit(xs, ys []float64) error
	Predict(xs []float64) []float64
	Line() Line
	Name() string
}

// Fixed is a line chosen by hand. Fit does nothing.
type Fixed struct {
	L Line
}

func NewFixed(l Line) *Fixed { return &Fixed{L: l} }

func (f *Fixed) Fit(xs, ys []float64) error     { return nil }
func (f *Fixed) Predict(xs []float64) []float64 { return EvaluateLine(xs, f.L) }
func (f *Fixed) Line() Line                     { return f.L }
func (f *Fixed) Name() string                   { return "Fixed" }
