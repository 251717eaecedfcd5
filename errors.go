package findereye

import "errors"

var (
	// ErrNotFound is returned when no finder eye could be located, or when an
	// image has too little contrast to binarize.
	ErrNotFound = errors.New("finder eye not found")

	// ErrInvalidImage is returned when an image is nil or has no pixels.
	ErrInvalidImage = errors.New("invalid image")
)
