// Package finder locates finder eyes in two-tone images.
//
// Every row is run-length encoded and searched for the 1:1:3:1:1
// dark/light/dark/light/dark signature of a finder pattern. Hits on nearby
// rows are clustered, cross-checked along the columns, clustered again, and
// each survivor is flood filled outwards to measure the three rings of the eye.
// Rows and ring walks are processed in parallel; clustering waits for the
// whole previous phase.
package finder

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/internal/parallel"
)

// minDimension is the smallest image side that can hold a finder pattern.
const minDimension = 7

// Detector finds finder eyes in a single image.
type Detector struct {
	image findereye.BinaryImage
	opts  Options
}

// NewDetector creates a Detector for img. A nil opts uses DefaultOptions.
func NewDetector(img findereye.BinaryImage, opts *Options) *Detector {
	if opts == nil {
		opts = DefaultOptions()
	}
	d := &Detector{image: img, opts: *opts}
	d.opts.Tolerance = d.opts.Tolerance.withDefaults()
	d.opts.Clustering = d.opts.Clustering.withDefaults()
	return d
}

// Detect is shorthand for NewDetector(img, opts).Detect().
func Detect(img findereye.BinaryImage, opts *Options) ([]findereye.Eye, error) {
	return NewDetector(img, opts).Detect()
}

// Detect returns every finder eye in the image. The order of eyes carries no
// meaning but is stable for a given image. An image too small to hold a
// finder pattern yields no eyes and no error.
func (d *Detector) Detect() ([]findereye.Eye, error) {
	if d.image == nil {
		return nil, findereye.ErrInvalidImage
	}
	width, height := d.image.Width(), d.image.Height()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", findereye.ErrInvalidImage, width, height)
	}
	if width < minDimension || height < minDimension {
		return nil, nil
	}
	log := d.opts.logger()
	ctx := context.Background()

	rows, err := parallel.Map(ctx, d.opts.Workers, height, func(y int) ([]Candidate, error) {
		return collectRow(d.image, y, d.opts.Tolerance), nil
	})
	if err != nil {
		return nil, fmt.Errorf("finder: row scan: %w", err)
	}
	var hits []Candidate
	for _, r := range rows {
		hits = append(hits, r...)
	}

	clustered := Group(hits, d.opts.Clustering)
	verified := Group(verifyAll(d.image, clustered, d.opts.Tolerance), d.opts.Clustering)
	log.Debug("finder: candidates",
		"rows", height, "hits", len(hits), "clustered", len(clustered), "verified", len(verified))

	type walk struct {
		eye findereye.Eye
		ok  bool
	}
	walks, err := parallel.Map(ctx, d.opts.Workers, len(verified), func(i int) (walk, error) {
		eye, err := WalkRings(d.image, verified[i])
		if errors.Is(err, ErrRingWalk) {
			log.Debug("finder: dropping candidate", "x", verified[i].X, "y", verified[i].Y, "error", err)
			return walk{}, nil
		}
		return walk{eye: eye, ok: err == nil}, err
	})
	if err != nil {
		return nil, fmt.Errorf("finder: ring walk: %w", err)
	}

	var eyes []findereye.Eye
	seen := make(map[[3]findereye.Ring]struct{}, len(walks))
	for _, w := range walks {
		if !w.ok {
			continue
		}
		key := w.eye.Rings()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		eyes = append(eyes, w.eye)
	}
	log.Debug("finder: done", "eyes", len(eyes))
	return eyes, nil
}
