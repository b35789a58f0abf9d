package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"linfit/internal/data"
	"linfit/internal/regression"
	"linfit/internal/session"
)

type result struct {
	Param    string
	Values   []float64
	Errors   []float64
	ArgMin   float64
	MinError float64
	Optimum  float64
	Step     float64
}

func defaultRange(param string) (float64, float64) {
	if param == "intercept" {
		return session.InterceptMin, session.InterceptMax
	}
	return session.SlopeMin, session.SlopeMax
}

// sweepRange fills whichever bound was not given on the command line with the
// parameter's limit.
func sweepRange(param string, lo, hi float64, loSet, hiSet bool) (float64, float64) {
	dlo, dhi := defaultRange(param)
	if !loSet {
		lo = dlo
	}
	if !hiSet {
		hi = dhi
	}
	return lo, hi
}

// sweep varies one parameter over [lo, hi] and holds the other at its
// best-fit value.
func sweep(xs, ys []float64, best regression.Line, param string, lo, hi float64, points int) (result, error) {
	if param != "slope" && param != "intercept" {
		return result{}, fmt.Errorf("unknown parameter %q", param)
	}
	if len(xs) != len(ys) {
		return result{}, regression.ErrLengthMismatch
	}
	if points < 2 || lo >= hi {
		return result{}, fmt.Errorf("need at least 2 points over a non-empty range, got %d over [%v, %v]", points, lo, hi)
	}
	r := result{Param: param, Values: data.Linspace(lo, hi, points), Step: (hi - lo) / float64(points-1)}
	r.Errors = make([]float64, points)
	r.Optimum = best.Slope
	if param == "intercept" {
		r.Optimum = best.Intercept
	}
	for i, v := range r.Values {
		l := best
		if param == "slope" {
			l.Slope = v
		} else {
			l.Intercept = v
		}
		e := regression.TotalSquaredError(xs, ys, l)
		r.Errors[i] = e
		if i == 0 || e < r.MinError {
			r.MinError, r.ArgMin = e, v
		}
	}
	return r, nil
}

func writeCSV(path string, r result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{r.Param, "total_error"}); err != nil {
		return err
	}
	for i := range r.Values {
		rec := []string{strconv.FormatFloat(r.Values[i], 'f', 6, 64), strconv.FormatFloat(r.Errors[i], 'f', 6, 64)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
