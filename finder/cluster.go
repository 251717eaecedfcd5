package finder

import (
	"math"
	"sort"
)

// Clustering controls how raw hits from neighbouring scanlines are merged.
type Clustering struct {
	// XGap is the horizontal distance, in pixels, at which two consecutive
	// hits stop belonging to the same group.
	XGap float64

	// YRatio scales a hit's Width into the vertical distance at which it
	// stops belonging to the previous hit's group.
	YRatio float64
}

// DefaultClustering returns a 3 px horizontal gap and a vertical gap of 3/7
// of the pattern width.
func DefaultClustering() Clustering {
	return Clustering{XGap: 3, YRatio: 3.0 / 7.0}
}

// Group merges candidates that belong to the same physical finder pattern and
// returns one averaged candidate per group.
//
// Candidates are first split into runs of consecutive X values closer than
// XGap, then each run is split along Y wherever two consecutive hits are at
// least Width*YRatio apart. Exact duplicates inside a group count once.
// The input slice is not modified.
func Group(cands []Candidate, cfg Clustering) []Candidate {
	if len(cands) == 0 {
		return nil
	}
	sorted := make([]Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var out []Candidate
	for _, column := range splitWhere(sorted, func(prev, cur Candidate) bool {
		return math.Abs(cur.X-prev.X) >= cfg.XGap
	}) {
		sort.SliceStable(column, func(i, j int) bool { return column[i].Y < column[j].Y })
		for _, group := range splitWhere(column, func(prev, cur Candidate) bool {
			return math.Abs(cur.Y-prev.Y) >= cur.Width*cfg.YRatio
		}) {
			if c, ok := average(dedupe(group)); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// splitWhere cuts s into consecutive sub-slices, starting a new one wherever
// brk reports true for a neighbouring pair. The sub-slices share s's storage.
func splitWhere(s []Candidate, brk func(prev, cur Candidate) bool) [][]Candidate {
	if len(s) == 0 {
		return nil
	}
	var parts [][]Candidate
	start := 0
	for i := 1; i < len(s); i++ {
		if brk(s[i-1], s[i]) {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	return append(parts, s[start:])
}

// dedupe drops exact duplicates, keeping first occurrences in order.
func dedupe(group []Candidate) []Candidate {
	seen := make(map[Candidate]struct{}, len(group))
	out := make([]Candidate, 0, len(group))
	for _, c := range group {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func average(group []Candidate) (Candidate, bool) {
	if len(group) == 0 {
		return Candidate{}, false
	}
	var sum Candidate
	for _, c := range group {
		sum.X += c.X
		sum.Y += c.Y
		sum.Width += c.Width
	}
	n := float64(len(group))
	return Candidate{X: sum.X / n, Y: sum.Y / n, Width: sum.Width / n}, true
}
