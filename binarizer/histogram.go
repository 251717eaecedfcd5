package binarizer

import (
	findereye "github.com/ericlevine/findereye"
	"github.com/ericlevine/findereye/bitutil"
)

const (
	luminanceBits    = 5
	luminanceShift   = 8 - luminanceBits
	luminanceBuckets = 1 << luminanceBits
)

// GlobalHistogram picks a single black point from a luminance histogram of
// the central part of the image. It adapts to the overall exposure of the
// image where Threshold does not.
type GlobalHistogram struct {
	source findereye.LuminanceSource
	matrix *bitutil.BitMatrix
}

// NewGlobalHistogram creates a new GlobalHistogram binarizer.
func NewGlobalHistogram(source findereye.LuminanceSource) *GlobalHistogram {
	return &GlobalHistogram{source: source}
}

// LuminanceSource returns the underlying source.
func (g *GlobalHistogram) LuminanceSource() findereye.LuminanceSource {
	return g.source
}

// BlackMatrix returns the binarized image. It fails with
// findereye.ErrNotFound when the histogram has no two distinct peaks.
func (g *GlobalHistogram) BlackMatrix() (*bitutil.BitMatrix, error) {
	if g.matrix != nil {
		return g.matrix, nil
	}
	width, height := g.source.Width(), g.source.Height()
	if width < 1 || height < 1 {
		return nil, findereye.ErrInvalidImage
	}

	// Sample four rows across the middle three fifths of the image.
	var buckets [luminanceBuckets]int
	row := make([]byte, width)
	for i := 1; i < 5; i++ {
		row = g.source.Row(height*i/5, row)
		for _, v := range row[width/5 : width*4/5] {
			buckets[v>>luminanceShift]++
		}
	}
	blackPoint, err := estimateBlackPoint(buckets[:])
	if err != nil {
		return nil, err
	}

	matrix := bitutil.NewBitMatrixWithSize(width, height)
	luminances := g.source.Matrix()
	for y := 0; y < height; y++ {
		for x, v := range luminances[y*width : (y+1)*width] {
			if int(v) < blackPoint {
				matrix.Set(x, y)
			}
		}
	}
	g.matrix = matrix
	return matrix, nil
}

// estimateBlackPoint finds the valley between the two tallest, well separated
// peaks of the histogram.
func estimateBlackPoint(buckets []int) (int, error) {
	numBuckets := len(buckets)
	firstPeak, firstPeakSize := 0, 0
	for x, n := range buckets {
		if n > firstPeakSize {
			firstPeak, firstPeakSize = x, n
		}
	}
	maxBucketCount := firstPeakSize

	// The second peak favours buckets far from the first.
	secondPeak, secondPeakScore := 0, 0
	for x, n := range buckets {
		dist := x - firstPeak
		if score := n * dist * dist; score > secondPeakScore {
			secondPeak, secondPeakScore = x, score
		}
	}
	if secondPeakScore == 0 {
		// Single-tone histogram.
		return 0, findereye.ErrNotFound
	}
	if firstPeak > secondPeak {
		firstPeak, secondPeak = secondPeak, firstPeak
	}
	if secondPeak-firstPeak <= numBuckets/16 {
		return 0, findereye.ErrNotFound
	}

	bestValley, bestValleyScore := secondPeak-1, -1
	for x := secondPeak - 1; x > firstPeak; x-- {
		fromFirst := x - firstPeak
		score := fromFirst * fromFirst * (secondPeak - x) * (maxBucketCount - buckets[x])
		if score > bestValleyScore {
			bestValley, bestValleyScore = x, score
		}
	}
	return bestValley << luminanceShift, nil
}
