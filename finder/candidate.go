package finder

import "github.com/ericlevine/findereye"

// Candidate is a tentative finder pattern hit.
//
// Candidates compare by exact field value, so they can be used as map keys
// when duplicates are collapsed.
type Candidate struct {
	// X is the sub-pixel horizontal center of the run group.
	X float64

	// Y is the scanline the hit was found on. Averaged candidates may have a
	// fractional Y.
	Y float64

	// Width is the total width of the five runs, about seven module widths.
	Width float64
}

// ModuleSize returns the estimated width of one module in pixels.
func (c Candidate) ModuleSize() float64 {
	return c.Width / 7.0
}

// collectRow returns every finder pattern hit on row y. Overlapping hits are
// returned as-is.
func collectRow(img findereye.BinaryImage, y int, tol Tolerance) []Candidate {
	var hits []Candidate
	matchRuns(RowRuns(img, y), tol, func(center float64, total int) {
		hits = append(hits, Candidate{X: center, Y: float64(y), Width: float64(total)})
	})
	return hits
}
