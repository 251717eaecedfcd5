package finder

import "github.com/ericlevine/findereye"

// verifyAll cross-checks every candidate along the vertical axis and returns
// the survivors. A candidate appears once for each column that confirmed it.
func verifyAll(img findereye.BinaryImage, cands []Candidate, tol Tolerance) []Candidate {
	var verified []Candidate
	for _, c := range cands {
		for n := confirmingColumns(img, c, tol); n > 0; n-- {
			verified = append(verified, c)
		}
	}
	return verified
}

// confirmingColumns counts the columns near c whose vertical runs also contain
// a finder pattern. The probe covers 4.5 module widths above and below c and
// one module width to either side, clamped to the image.
func confirmingColumns(img findereye.BinaryImage, c Candidate, tol Tolerance) int {
	module := c.ModuleSize()
	y0 := clampIndex(c.Y-4.5*module, img.Height())
	y1 := clampIndex(c.Y+4.5*module, img.Height())
	x0 := clampIndex(c.X-module, img.Width())
	x1 := clampIndex(c.X+module, img.Width())

	confirmed := 0
	for x := x0; x < x1; x++ {
		found := false
		matchRuns(ColumnRuns(img, x, y0, y1), tol, func(float64, int) { found = true })
		if found {
			confirmed++
		}
	}
	return confirmed
}

// clampIndex clamps v to [0, n-1] and truncates it to a pixel index.
func clampIndex(v float64, n int) int {
	v = min(max(v, 0), float64(n-1))
	return int(v)
}
