// Package findereye locates the three concentric finder eyes of QR-style
// matrix barcodes in two-tone raster images.
//
// The detection pipeline lives in the finder package; this package holds the
// types shared between the detector, the binarizers and callers.
package findereye

import "image"

// Color is the value of one pixel in a two-tone image.
type Color uint8

const (
	Dark Color = iota
	Light
)

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case Dark:
		return "DARK"
	case Light:
		return "LIGHT"
	default:
		return "UNKNOWN"
	}
}

// BinaryImage is a read-only two-tone raster. x is the column, y is the row,
// and the origin is at the top-left. Get reports whether a pixel is dark.
//
// Implementations must be safe for concurrent reads.
type BinaryImage interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// ColorAt returns the color of the pixel at (x, y).
func ColorAt(img BinaryImage, x, y int) Color {
	if img.Get(x, y) {
		return Dark
	}
	return Light
}

// Ring is one 8-connected region of a single color.
type Ring struct {
	Color    Color
	Centroid image.Point
	Area     int
}

// Eye is one detected finder eye: the candidate center that seeded the ring
// walk and the three rings measured from it.
type Eye struct {
	// X and Y are the sub-pixel center estimate from the run-length scan.
	X, Y float64

	// Width is the averaged total width of the 1:1:3:1:1 run group.
	Width float64

	Inner  Ring // dark core, 3x3 modules
	Middle Ring // light ring
	Outer  Ring // dark ring, 7x7 modules
}

// ModuleSize returns the estimated width of one module in pixels.
func (e Eye) ModuleSize() float64 {
	return e.Width / 7.0
}

// Rings returns the rings ordered from the inside out.
func (e Eye) Rings() [3]Ring {
	return [3]Ring{e.Inner, e.Middle, e.Outer}
}
