package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericlevine/findereye"
)

func TestConfirmPatternCanonical(t *testing.T) {
	tol := DefaultTolerance()
	for k := 2; k <= 40; k++ {
		assert.True(t, ConfirmPattern([5]int{k, k, 3 * k, k, k}, tol), "k=%d", k)
	}
}

func TestConfirmPatternMinimumSum(t *testing.T) {
	tol := DefaultTolerance()
	// The sum of 7 sits exactly on the boundary and is accepted.
	assert.True(t, ConfirmPattern([5]int{1, 1, 3, 1, 1}, tol))
	// A sum of 6 fits the tolerances but is below the minimum scale.
	assert.False(t, ConfirmPattern([5]int{1, 1, 2, 1, 1}, tol))
}

func TestConfirmPatternRejects(t *testing.T) {
	tol := DefaultTolerance()
	tests := []struct {
		name string
		runs [5]int
	}{
		{"side run too wide", [5]int{4, 6, 12, 4, 4}},
		{"side run too narrow", [5]int{4, 4, 12, 4, 2}},
		{"center too wide", [5]int{4, 4, 16, 4, 4}},
		{"center too narrow", [5]int{5, 5, 10, 5, 5}},
		{"center not dominant", [5]int{2, 2, 4, 1, 1}},
		{"zero runs", [5]int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, ConfirmPattern(tc.runs, tol))
		})
	}
}

func TestConfirmPatternCustomTolerance(t *testing.T) {
	runs := [5]int{4, 6, 12, 4, 4}
	assert.False(t, ConfirmPattern(runs, DefaultTolerance()))
	assert.True(t, ConfirmPattern(runs, Tolerance{Side: 2, Center: 2}))
}

func TestMatchRunsCenter(t *testing.T) {
	runs := []Run{
		{6, findereye.Light},
		{4, findereye.Dark},
		{4, findereye.Light},
		{12, findereye.Dark},
		{4, findereye.Light},
		{4, findereye.Dark},
		{10, findereye.Light},
	}
	var centers []float64
	var totals []int
	matchRuns(runs, DefaultTolerance(), func(center float64, total int) {
		centers = append(centers, center)
		totals = append(totals, total)
	})
	// offset 6 + r0 4 + r1 4 + r2/2 6 + r3 4
	assert.Equal(t, []float64{24}, centers)
	assert.Equal(t, []int{28}, totals)
}

func TestMatchRunsRequiresDarkFirst(t *testing.T) {
	runs := []Run{
		{4, findereye.Light},
		{4, findereye.Dark},
		{12, findereye.Light},
		{4, findereye.Dark},
		{4, findereye.Light},
	}
	matchRuns(runs, DefaultTolerance(), func(float64, int) {
		t.Fatal("inverted pattern must not match")
	})
}

func TestMatchRunsTooFewRuns(t *testing.T) {
	runs := []Run{{4, findereye.Dark}, {4, findereye.Light}, {12, findereye.Dark}}
	matchRuns(runs, DefaultTolerance(), func(float64, int) {
		t.Fatal("three runs cannot match")
	})
}
