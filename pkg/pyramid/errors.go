package pyramid

import "errors"

// Sentinel errors. Callers match with errors.Is; the values returned
// by this package wrap these with the offending arguments.
var (
	// ErrInvalidArgument covers a filter size < 2, maxLevels < 1, or an
	// image with a non-positive dimension.
	ErrInvalidArgument = errors.New("pyramid: invalid argument")

	// ErrShapeMismatch means two images (or an image/mask pair) with
	// differing spatial dimensions were passed to Blend.
	ErrShapeMismatch = errors.New("pyramid: shape mismatch")
)
