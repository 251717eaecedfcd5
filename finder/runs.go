package finder

import "github.com/ericlevine/findereye"

// Run is a maximal stretch of same-colored pixels along one scan axis.
type Run struct {
	Length int
	Color  findereye.Color
}

// RowRuns run-length encodes row y of img from left to right.
func RowRuns(img findereye.BinaryImage, y int) []Run {
	return appendRuns(nil, img.Width(), func(x int) bool { return img.Get(x, y) })
}

// ColumnRuns run-length encodes column x of img over rows [y0, y1), top to
// bottom. An empty range yields no runs.
func ColumnRuns(img findereye.BinaryImage, x, y0, y1 int) []Run {
	return appendRuns(nil, y1-y0, func(i int) bool { return img.Get(x, y0+i) })
}

// appendRuns encodes the n pixels reported by dark and appends the runs to
// dst. The last run is always flushed.
func appendRuns(dst []Run, n int, dark func(i int) bool) []Run {
	if n <= 0 {
		return dst
	}
	current := dark(0)
	count := 1
	for i := 1; i < n; i++ {
		if d := dark(i); d != current {
			dst = append(dst, Run{Length: count, Color: colorOf(current)})
			current = d
			count = 1
		} else {
			count++
		}
	}
	return append(dst, Run{Length: count, Color: colorOf(current)})
}

func colorOf(dark bool) findereye.Color {
	if dark {
		return findereye.Dark
	}
	return findereye.Light
}
