package findereye

import "github.com/ericlevine/findereye/bitutil"

// LuminanceSource provides access to greyscale luminance values for an image.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large enough,
	// it is reused.
	Row(y int, row []byte) []byte

	// Matrix returns the entire luminance matrix in row-major order.
	Matrix() []byte

	Width() int
	Height() int
}

// Binarizer converts luminance data to a two-tone image.
type Binarizer interface {
	// BlackMatrix returns the binarized image. Set bits are dark.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// LuminanceSource returns the underlying LuminanceSource.
	LuminanceSource() LuminanceSource
}
