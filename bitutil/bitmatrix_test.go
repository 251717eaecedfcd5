package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(70, 10)
	bm.Set(3, 5)
	bm.Set(66, 9)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if !bm.Get(66, 9) {
		t.Error("bit (66,9) should be set across the word boundary")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixFlipAllKeepsPaddingClear(t *testing.T) {
	bm := NewBitMatrixWithSize(5, 3)
	bm.Set(0, 0)
	bm.FlipAll()
	if bm.Get(0, 0) {
		t.Error("(0,0) should be clear after FlipAll")
	}
	if got, want := bm.Count(), 5*3-1; got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
}

func TestBitMatrixUnset(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 4)
	bm.Set(2, 3)
	bm.Unset(2, 3)
	if bm.Get(2, 3) {
		t.Error("bit should be unset")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.SetRegion(2, 2, 4, 4)
	bm.UnsetRegion(3, 3, 2, 2)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			outer := x >= 2 && x < 6 && y >= 2 && y < 6
			inner := x >= 3 && x < 5 && y >= 3 && y < 5
			expected := outer && !inner
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixInBounds(t *testing.T) {
	bm := NewBitMatrixWithSize(3, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 1, false},
		{2, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range tests {
		if got := bm.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestBitMatrixRotate90(t *testing.T) {
	bm := NewBitMatrixWithSize(4, 3)
	bm.Set(3, 0) // top-right
	r := bm.Rotate90()
	// After 90 CCW: (3,0) -> (0,0) for a 3x4 matrix
	if r.Width() != 3 || r.Height() != 4 {
		t.Errorf("dimensions after 90 rotation: %dx%d, want 3x4", r.Width(), r.Height())
	}
	if !r.Get(0, 0) {
		t.Error("(0,0) should be set after 90 rotation")
	}
}

func TestParseStringMatrix(t *testing.T) {
	bm := ParseStringMatrix(`
#..#
.##.
`, "#", ".")
	if bm.Width() != 4 || bm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", bm.Width(), bm.Height())
	}
	want := "#..#\n.##.\n"
	if got := bm.StringWithChars("#", "."); got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("modifying clone should not affect original")
	}
	if !clone.Get(1, 1) {
		t.Error("clone should keep original bits")
	}
}
