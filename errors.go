package bitglyph

import "errors"

// Sentinel errors for the bitglyph package.
var (
	// ErrInvalidDimensions is returned when a bitmap is requested with a
	// negative width or height, or with a pixel slice whose length does not
	// match width*height.
	ErrInvalidDimensions = errors.New("bitglyph: invalid bitmap dimensions")

	// ErrMalformedBitmap is returned when a packed buffer is inconsistent
	// with its declared row count and pitch.
	ErrMalformedBitmap = errors.New("bitglyph: malformed packed bitmap")
)
