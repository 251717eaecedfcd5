package finder

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/bitutil"
)

// ErrRingWalk is returned when the three rings of a finder eye cannot be
// traced from a candidate.
var ErrRingWalk = errors.New("ring walk failed")

var neighbours = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// FloodFill returns every pixel of color c that is 8-connected to seed. If
// seed itself has another color the fill starts from those of its neighbours
// that have color c, and seed is not part of the result. The result is empty
// if seed is outside the image.
func FloodFill(img findereye.BinaryImage, seed image.Point, c findereye.Color) []image.Point {
	visited := bitutil.NewBitMatrixWithSize(img.Width(), img.Height())
	if !visited.InBounds(seed.X, seed.Y) {
		return nil
	}

	var stack []image.Point
	push := func(p image.Point) {
		if !visited.InBounds(p.X, p.Y) || visited.Get(p.X, p.Y) || findereye.ColorAt(img, p.X, p.Y) != c {
			return
		}
		visited.Set(p.X, p.Y)
		stack = append(stack, p)
	}
	if findereye.ColorAt(img, seed.X, seed.Y) == c {
		push(seed)
	} else {
		visited.Set(seed.X, seed.Y)
		for _, d := range neighbours {
			push(seed.Add(d))
		}
	}

	var members []image.Point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, p)
		for _, d := range neighbours {
			push(p.Add(d))
		}
	}
	return members
}

// RingAt measures the region of color c around seed and probes right from seed
// to the first pixel of another color, which is where the next ring starts. A
// seed that already has another color is its own exit point.
// ok is false if the region is empty or the probe runs off the image; the
// measured ring is still returned in the latter case.
func RingAt(img findereye.BinaryImage, seed image.Point, c findereye.Color) (ring findereye.Ring, next image.Point, ok bool) {
	members := FloodFill(img, seed, c)
	if len(members) == 0 {
		return findereye.Ring{}, image.Point{}, false
	}

	var sx, sy int
	for _, p := range members {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(members))
	ring = findereye.Ring{
		Color: c,
		Centroid: image.Point{
			X: int(math.Round(float64(sx) / n)),
			Y: int(math.Round(float64(sy) / n)),
		},
		Area: len(members),
	}

	for x := seed.X; x < img.Width(); x++ {
		if findereye.ColorAt(img, x, seed.Y) != c {
			return ring, image.Point{X: x, Y: seed.Y}, true
		}
	}
	return ring, image.Point{}, false
}

// WalkRings traces the dark core, light ring and dark outer ring of the
// finder eye around c, starting from its center.
func WalkRings(img findereye.BinaryImage, c Candidate) (findereye.Eye, error) {
	eye := findereye.Eye{X: c.X, Y: c.Y, Width: c.Width}
	seed := image.Point{X: int(c.X), Y: int(c.Y)}

	colors := [3]findereye.Color{findereye.Dark, findereye.Light, findereye.Dark}
	slots := [3]*findereye.Ring{&eye.Inner, &eye.Middle, &eye.Outer}
	for i, color := range colors {
		ring, next, ok := RingAt(img, seed, color)
		if ring.Area == 0 {
			return findereye.Eye{}, fmt.Errorf("%w: no %s region at %v", ErrRingWalk, color, seed)
		}
		*slots[i] = ring
		if i < len(colors)-1 && !ok {
			return findereye.Eye{}, fmt.Errorf("%w: %s ring at %v has no outer edge", ErrRingWalk, color, seed)
		}
		seed = next
	}
	return eye, nil
}
