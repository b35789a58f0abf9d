package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"linfit/internal/regression"
	"linfit/internal/session"
)

var (
	userColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	bestColor = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	goodColor = color.RGBA{R: 40, G: 160, B: 60, A: 255}
	badColor  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

const (
	ChartWidth  = 8 * vg.Inch
	ChartHeight = 4 * vg.Inch
	BarHeight   = 1.5 * vg.Inch
)

func toXY(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Chart draws the data points, the user's line (solid red) and the best-fit
// line (dashed purple).
func Chart(snap session.Snapshot) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Regression line: error %.2f (%s)", snap.TotalError, snap.Label)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	xs := make([]float64, len(snap.Points))
	ys := make([]float64, len(snap.Points))
	for i, pt := range snap.Points {
		xs[i], ys[i] = pt.X, pt.Y
	}

	sc, err := plotter.NewScatter(toXY(xs, ys))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Radius = vg.Points(3)

	user, err := plotter.NewLine(toXY(xs, snap.UserYs))
	if err != nil {
		return nil, err
	}
	user.LineStyle.Color = userColor
	user.LineStyle.Width = vg.Points(2)

	best, err := plotter.NewLine(toXY(xs, snap.BestYs))
	if err != nil {
		return nil, err
	}
	best.LineStyle.Color = bestColor
	best.LineStyle.Width = vg.Points(1.5)
	best.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	p.Add(plotter.NewGrid(), sc, user, best)
	p.Legend.Add("data", sc)
	p.Legend.Add(fmt.Sprintf("your line %s", snap.UserLine), user)
	p.Legend.Add(fmt.Sprintf("best fit %s", snap.BestLine), best)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// ErrorBar draws the current total error as one horizontal bar, green below
// the Acceptable threshold and red otherwise.
func ErrorBar(snap session.Snapshot, t regression.Thresholds) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Total error"
	p.X.Label.Text = "Error magnitude"
	p.HideY()

	bar, err := errorBar(snap.TotalError, t)
	if err != nil {
		return nil, err
	}
	p.Add(bar)
	p.X.Min = 0
	if p.X.Max < t.Acceptable {
		p.X.Max = t.Acceptable
	}
	return p, nil
}

func errorBar(total float64, t regression.Thresholds) (*plotter.BarChart, error) {
	bar, err := plotter.NewBarChart(plotter.Values{total}, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bar.Horizontal = true
	bar.LineStyle.Width = 0
	bar.Color = goodColor
	if total >= t.Acceptable {
		bar.Color = badColor
	}
	return bar, nil
}

// Curve draws one or more named series, as pairs of name and plotter.XYs.
func Curve(title, xLabel, yLabel string, series ...interface{}) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return nil, err
	}
	return p, nil
}

func Points(xs, ys []float64) plotter.XYs { return toXY(xs, ys) }

func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func SavePNG(path string, p *plot.Plot, width, height vg.Length) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return p.Save(width, height, path)
}
