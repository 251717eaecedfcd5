package finder

import (
	"github.com/ericlevine/findereye/bitutil"
)

// stampEye draws a canonical 7x7-module finder eye with module size k whose
// geometric center is (cx, cy). k must be even so the center is exact.
func stampEye(bm *bitutil.BitMatrix, cx, cy, k int) {
	left, top := cx-7*k/2, cy-7*k/2
	bm.SetRegion(left, top, 7*k, 7*k)
	bm.UnsetRegion(left+k, top+k, 5*k, 5*k)
	bm.SetRegion(left+2*k, top+2*k, 3*k, 3*k)
}

// threeEyes returns a 170x170 image with eyes at (20,20), (20,140) and
// (140,20), module size 4.
func threeEyes() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrix(170)
	stampEye(bm, 20, 20, 4)
	stampEye(bm, 20, 140, 4)
	stampEye(bm, 140, 20, 4)
	return bm
}

// asymmetricEye returns a 50x50 image holding one lopsided eye whose box
// starts at (20,20). Rows through the core read 2,2,5,3,1 and columns read
// 2,2,6,2,2, so the scan estimate of the center lands on the first light
// pixel right of the core.
func asymmetricEye() *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrix(50)
	bm.SetRegion(20, 20, 13, 14)
	bm.UnsetRegion(22, 22, 10, 10)
	bm.SetRegion(24, 24, 5, 6)
	return bm
}
