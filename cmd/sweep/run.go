package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"linfit/internal/data"
	"linfit/internal/regression"
	"linfit/internal/render"
)

func run(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	seed := fs.Uint64("seed", data.DefaultSeed, "Seed for the noise generator")
	n := fs.Int("n", 50, "Number of points")
	param := fs.String("param", "slope", "Parameter to sweep: slope|intercept")
	lo := fs.Float64("min", 0, "Sweep start (defaults to the parameter's lower bound)")
	hi := fs.Float64("max", 0, "Sweep end (defaults to the parameter's upper bound)")
	points := fs.Int("points", 201, "Number of sweep points")
	csvOut := fs.String("csv", "data/sweep.csv", "CSV output")
	pngOut := fs.String("png", "data/sweep.png", "PNG output")
	gdLR := fs.Float64("gd_lr", 0.02, "Gradient descent learning rate")
	gdIters := fs.Int("gd_iters", 20000, "Gradient descent iteration cap")
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	from, to := sweepRange(*param, *lo, *hi, set["min"], set["max"])

	cfg := data.DefaultGenConfig()
	cfg.N = *n
	ds, err := data.Generate(*seed, cfg)
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	xs, ys := ds.Columns()
	ols := regression.NewOLS()
	if err := ols.Fit(xs, ys); err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	sw, err := sweep(xs, ys, ols.Line(), *param, from, to, *points)
	if err != nil {
		return err
	}
	logger.Info("sweep",
		zap.String("param", *param),
		zap.Float64("from", from),
		zap.Float64("to", to),
		zap.Float64("argmin", sw.ArgMin),
		zap.Float64("min_error", sw.MinError),
		zap.Float64("ols_value", sw.Optimum),
		zap.Float64("grid_step", sw.Step),
	)

	gd := regression.NewGradientDescent()
	gd.LearningRate = *gdLR
	gd.Iterations = *gdIters
	if err := gd.Fit(xs, ys); err != nil {
		logger.Warn("gradient descent", zap.Error(err), zap.Int("steps", gd.Steps))
	} else {
		logger.Info("gradient descent",
			zap.Int("steps", gd.Steps),
			zap.Float64("slope", gd.Line().Slope),
			zap.Float64("intercept", gd.Line().Intercept),
			zap.Float64("ols_slope", ols.Line().Slope),
			zap.Float64("ols_intercept", ols.Line().Intercept),
		)
	}

	if err := writeCSV(*csvOut, sw); err != nil {
		return fmt.Errorf("write sweep csv: %w", err)
	}
	logger.Info("sweep saved", zap.String("csv", *csvOut))
	p, err := render.Curve("Total error sweep", *param, "Total squared error",
		"error", render.Points(sw.Values, sw.Errors))
	if err == nil {
		err = render.SavePNG(*pngOut, p, render.ChartWidth, render.ChartHeight)
	}
	if err != nil {
		return fmt.Errorf("write sweep png: %w", err)
	}
	logger.Info("sweep chart saved", zap.String("png", *pngOut))
	return nil
}
