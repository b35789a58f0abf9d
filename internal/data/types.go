package data

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is an ordered, immutable set of observations. Accessors hand out copies.
type Dataset struct {
	points []Point
}

func NewDataset(points []Point) Dataset {
	cp := make([]Point, len(points))
	copy(cp, points)
	return Dataset{points: cp}
}

func (d Dataset) Len() int { return len(d.points) }

func (d Dataset) Points() []Point {
	out := make([]Point, len(d.points))
	copy(out, d.points)
	return out
}

// Columns splits the dataset into its x and y columns.
func (d Dataset) Columns() (xs, ys []float64) {
	xs = make([]float64, len(d.points))
	ys = make([]float64, len(d.points))
	for i, p := range d.points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// Fingerprint hashes the raw float bits of every point, so two datasets built
// from the same seed and config share a fingerprint.
func (d Dataset) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [16]byte
	for _, p := range d.points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
