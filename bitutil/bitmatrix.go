// Package bitutil provides a packed two-tone raster.
package bitutil

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// BitMatrix is a packed 2D matrix of bits. x is the column position, y is the
// row position, and the origin is at the top-left. A set bit is a dark pixel.
//
// Reads are safe for concurrent use; writes are not.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint64
}

// NewBitMatrix creates a new square BitMatrix with the given dimension.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a new all-clear BitMatrix.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + wordBits - 1) / wordBits
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint64, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from rows of booleans, true meaning set.
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	bm := NewBitMatrixWithSize(len(image[0]), len(image))
	for y, row := range image {
		for x, v := range row {
			if v {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// ParseStringMatrix creates a BitMatrix from a picture drawn with setStr and
// unsetStr, one row per line. Blank lines are ignored.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	var rows [][]bool
	for _, line := range strings.Split(strings.ReplaceAll(repr, "\r", ""), "\n") {
		if line == "" {
			continue
		}
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				row = append(row, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				row = append(row, false)
				line = line[len(unsetStr):]
			default:
				panic("bitmatrix: illegal character encountered")
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			panic("bitmatrix: row lengths do not match")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		panic("bitmatrix: empty matrix")
	}
	return ParseBoolMatrix(rows)
}

func (bm *BitMatrix) index(x, y int) (int, uint64) {
	return y*bm.rowSize + x/wordBits, 1 << uint(x%wordBits)
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	i, mask := bm.index(x, y)
	return bm.data[i]&mask != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	i, mask := bm.index(x, y)
	bm.data[i] |= mask
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	i, mask := bm.index(x, y)
	bm.data[i] &^= mask
}

// FlipAll flips every bit in the matrix. Padding bits past the width stay clear.
func (bm *BitMatrix) FlipAll() {
	last := bm.lastWordMask()
	for y := 0; y < bm.height; y++ {
		row := bm.data[y*bm.rowSize : (y+1)*bm.rowSize]
		for i := range row {
			row[i] = ^row[i]
		}
		row[len(row)-1] &= last
	}
}

func (bm *BitMatrix) lastWordMask() uint64 {
	if r := bm.width % wordBits; r != 0 {
		return 1<<uint(r) - 1
	}
	return ^uint64(0)
}

// InBounds reports whether (x, y) lies inside the matrix.
func (bm *BitMatrix) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < bm.width && y < bm.height
}

// SetRegion sets a rectangular region of bits.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	if top+height > bm.height || left+width > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			bm.Set(x, y)
		}
	}
}

// UnsetRegion clears a rectangular region of bits.
func (bm *BitMatrix) UnsetRegion(left, top, width, height int) {
	if !bm.InBounds(left, top) || !bm.InBounds(left+width-1, top+height-1) {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			bm.Unset(x, y)
		}
	}
}

// Count returns the number of set bits.
func (bm *BitMatrix) Count() int {
	n := 0
	for _, w := range bm.data {
		n += bits.OnesCount64(w)
	}
	return n
}

// Rotate90 returns a copy of the matrix rotated 90 degrees counterclockwise.
func (bm *BitMatrix) Rotate90() *BitMatrix {
	out := NewBitMatrixWithSize(bm.height, bm.width)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				out.Set(y, bm.width-1-x)
			}
		}
	}
	return out
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint64, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns a picture of the matrix using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a picture of the matrix using the given strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
