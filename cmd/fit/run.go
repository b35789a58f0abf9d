package main

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"linfit/internal/data"
	"linfit/internal/regression"
	"linfit/internal/render"
	"linfit/internal/session"
)

func run(args []string, logger *zap.Logger, out io.Writer) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	fs.SetOutput(out)
	seed := fs.Uint64("seed", data.DefaultSeed, "Seed for the noise generator")
	n := fs.Int("n", 50, "Number of points")
	slope := fs.Float64("slope", session.DefaultSlope, "Your slope, in [-10, 10]")
	intercept := fs.Float64("intercept", session.DefaultIntercept, "Your intercept, in [-20, 20]")
	clamp := fs.Bool("clamp", false, "Clamp slope and intercept into range instead of failing")
	good := fs.Float64("good", 50, "Errors below this are Excellent")
	acceptable := fs.Float64("acceptable", 200, "Errors below this are Acceptable")
	csvOut := fs.String("csv", "", "Write the dataset to this CSV path")
	pngOut := fs.String("png", "", "Write the chart to this PNG path")
	barOut := fs.String("bar_png", "", "Write the error bar to this PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := data.DefaultGenConfig()
	cfg.N = *n
	ds, err := data.Generate(*seed, cfg)
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	th := regression.Thresholds{Good: *good, Acceptable: *acceptable}
	engine, err := session.NewEngine(ds, th)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	line := regression.Line{Slope: *slope, Intercept: *intercept}
	if *clamp {
		line = session.Clamp(line)
	}
	st := session.New()
	if err := st.Set(line); err != nil {
		return fmt.Errorf("invalid line: %w", err)
	}
	snap := engine.Recompute(*st)

	logger.Info("fit",
		zap.Uint64("seed", *seed),
		zap.Int("n", ds.Len()),
		zap.String("fingerprint", snap.Fingerprint),
		zap.Float64("slope", snap.UserLine.Slope),
		zap.Float64("intercept", snap.UserLine.Intercept),
		zap.Float64("best_slope", snap.BestLine.Slope),
		zap.Float64("best_intercept", snap.BestLine.Intercept),
		zap.Float64("total_error", snap.TotalError),
		zap.Float64("best_error", snap.BestError),
		zap.Float64("r_squared", snap.RSquared),
		zap.Stringer("label", snap.Label),
	)
	fmt.Fprintf(out, "your line: %s\nbest fit:  %s\nerror:     %.2f (best %.2f)\nverdict:   %s\n",
		snap.UserLine, snap.BestLine, snap.TotalError, snap.BestError, snap.Label)

	if *csvOut != "" {
		if err := data.WriteCSVFile(*csvOut, ds); err != nil {
			return fmt.Errorf("write dataset csv: %w", err)
		}
		logger.Info("dataset saved", zap.String("path", *csvOut))
	}
	if *pngOut != "" {
		p, err := render.Chart(snap)
		if err == nil {
			err = render.SavePNG(*pngOut, p, render.ChartWidth, render.ChartHeight)
		}
		if err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		logger.Info("chart saved", zap.String("path", *pngOut))
	}
	if *barOut != "" {
		p, err := render.ErrorBar(snap, th)
		if err == nil {
			err = render.SavePNG(*barOut, p, render.ChartWidth, render.BarHeight)
		}
		if err != nil {
			return fmt.Errorf("write error bar: %w", err)
		}
		logger.Info("error bar saved", zap.String("path", *barOut))
	}
	return nil
}
