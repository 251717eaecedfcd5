package finder

import "github.com/ericlevine/findereye"

// Tolerance bounds how far a run may stray from the ideal 1:1:3:1:1 finder
// pattern, in pixels.
type Tolerance struct {
	// Side is the allowed deviation of each of the four outer runs from the
	// module width.
	Side float64

	// Center is the allowed deviation of the center run from three module
	// widths.
	Center float64
}

// DefaultTolerance returns the calibration used by the run-length finder
// method: ±1.5 px on the side runs and ±2.0 px on the center run.
func DefaultTolerance() Tolerance {
	return Tolerance{Side: 1.5, Center: 2.0}
}

// finderColors is the only color sequence a finder pattern can produce.
var finderColors = [5]findereye.Color{
	findereye.Dark, findereye.Light, findereye.Dark, findereye.Light, findereye.Dark,
}

// ConfirmPattern reports whether five consecutive run lengths, assumed to be
// dark/light/dark/light/dark, match the 1:1:3:1:1 finder pattern.
func ConfirmPattern(r [5]int, tol Tolerance) bool {
	total := r[0] + r[1] + r[2] + r[3] + r[4]
	if total < 7 {
		return false
	}
	w := float64(total) / 7.0
	if !within(r[0], w, tol.Side) || !within(r[1], w, tol.Side) ||
		!within(r[3], w, tol.Side) || !within(r[4], w, tol.Side) ||
		!within(r[2], 3*w, tol.Center) {
		return false
	}
	// Reject shapes that match the ratio but have a center thinner than
	// either pair of side runs.
	return r[2] > max(r[0]+r[1], r[3]+r[4])
}

func within(v int, want, tol float64) bool {
	f := float64(v)
	return want-tol <= f && f <= want+tol
}

// matchRuns slides a five-run window over runs and calls emit for every
// window that is a finder pattern. center is the window's center measured from
// the start of the scanline; total is the window's width in pixels.
func matchRuns(runs []Run, tol Tolerance, emit func(center float64, total int)) {
	offset := 0
	for i := 0; i+5 <= len(runs); i++ {
		if i > 0 {
			offset += runs[i-1].Length
		}
		var r [5]int
		ok := true
		for j := 0; j < 5; j++ {
			if runs[i+j].Color != finderColors[j] {
				ok = false
				break
			}
			r[j] = runs[i+j].Length
		}
		if !ok || !ConfirmPattern(r, tol) {
			continue
		}
		center := float64(offset+r[0]+r[1]+r[3]) + float64(r[2])/2.0
		emit(center, r[0]+r[1]+r[2]+r[3]+r[4])
	}
}
