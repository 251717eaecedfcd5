// Package binarizer converts luminance data into two-tone images.
package binarizer

import (
	findereye "github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/bitutil"
)

// DefaultThreshold is the fixed cut used by Threshold when none is given.
const DefaultThreshold = 127

// Threshold marks every pixel at or below a fixed luminance as dark.
type Threshold struct {
	source findereye.LuminanceSource
	level  int
	matrix *bitutil.BitMatrix
}

// NewThreshold creates a fixed-level binarizer. Levels outside 0..255 are
// clamped.
func NewThreshold(source findereye.LuminanceSource, level int) *Threshold {
	return &Threshold{source: source, level: min(max(level, 0), 255)}
}

// LuminanceSource returns the underlying source.
func (t *Threshold) LuminanceSource() findereye.LuminanceSource {
	return t.source
}

// BlackMatrix returns the binarized image. The result is cached.
func (t *Threshold) BlackMatrix() (*bitutil.BitMatrix, error) {
	if t.matrix != nil {
		return t.matrix, nil
	}
	width, height := t.source.Width(), t.source.Height()
	if width < 1 || height < 1 {
		return nil, findereye.ErrInvalidImage
	}
	matrix := bitutil.NewBitMatrixWithSize(width, height)
	row := make([]byte, width)
	for y := 0; y < height; y++ {
		row = t.source.Row(y, row)
		for x, v := range row[:width] {
			if int(v) <= t.level {
				matrix.Set(x, y)
			}
		}
	}
	t.matrix = matrix
	return matrix, nil
}
