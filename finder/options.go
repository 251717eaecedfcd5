package finder

import (
	"log/slog"

	"github.com/ericlevine/findereye/internal/parallel"
)

// Options configures finder eye detection.
type Options struct {
	// Workers is the number of goroutines used for the row scan and ring
	// walk phases. Zero means GOMAXPROCS.
	Workers int

	// Tolerance bounds the 1:1:3:1:1 run match. A zero field takes its
	// value from DefaultTolerance.
	Tolerance Tolerance

	// Clustering controls how hits on nearby scanlines are merged. A zero
	// field takes its value from DefaultClustering.
	Clustering Clustering

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the calibrated defaults.
func DefaultOptions() *Options {
	return &Options{
		Workers:    parallel.DefaultWorkers(),
		Tolerance:  DefaultTolerance(),
		Clustering: DefaultClustering(),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (t Tolerance) withDefaults() Tolerance {
	def := DefaultTolerance()
	if t.Side == 0 {
		t.Side = def.Side
	}
	if t.Center == 0 {
		t.Center = def.Center
	}
	return t
}

func (c Clustering) withDefaults() Clustering {
	def := DefaultClustering()
	if c.XGap == 0 {
		c.XGap = def.XGap
	}
	if c.YRatio == 0 {
		c.YRatio = def.YRatio
	}
	return c
}
