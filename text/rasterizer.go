package text

import "golang.org/x/image/math/fixed"

// RawGlyph is one rasterized glyph as delivered by a Rasterizer: a packed
// monochrome bitmap plus placement metrics in the rasterizer's native units.
type RawGlyph struct {
	// Buffer holds the packed 1-bit-per-pixel bitmap: Rows rows of Pitch
	// bytes each, MSB-first, trailing row bits padding. The buffer belongs
	// to the rasterizer's glyph slot and is valid only until the next
	// LoadGlyph call; consumers must copy out what they need immediately.
	Buffer []byte

	// Width is the bitmap width in pixels.
	Width int

	// Rows is the bitmap height in pixels.
	Rows int

	// Pitch is the number of bytes per packed row, at least ceil(Width/8).
	Pitch int

	// Top is the vertical distance from the baseline to the top row of the
	// bitmap. It may be negative or exceed Rows for unusual glyphs.
	Top int

	// Advance is the horizontal pen advance in 26.6 fixed point.
	Advance fixed.Int26_6
}

// Rasterizer supplies monochrome glyph bitmaps and kerning for single
// characters. It models a FreeType-style engine with a single mutable glyph
// slot: each LoadGlyph call overwrites the previous result, so RawGlyph
// buffers must be consumed before the next call.
type Rasterizer interface {
	// LoadGlyph rasterizes the glyph for r and returns its packed bitmap
	// and metrics. Returns an error wrapping ErrGlyphUnavailable when the
	// font has no glyph for r.
	LoadGlyph(r rune) (RawGlyph, error)

	// Kern returns the horizontal adjustment between prev and r in 26.6
	// fixed point, 0 when the font has no kerning data for the pair.
	Kern(prev, r rune) fixed.Int26_6
}

// Kerner supplies pairwise kerning on its own. A Renderer uses its
// Rasterizer for kerning by default; WithKerning substitutes a Kerner,
// letting a different engine (such as GoTextKerner) drive glyph spacing
// while the Rasterizer keeps producing the bitmaps.
type Kerner interface {
	Kern(prev, r rune) fixed.Int26_6
}

// floorPx converts a 26.6 fixed-point value to whole pixels, truncating
// toward negative infinity. Rasterizers report 1/64-pixel units; the grid
// is integer pixels.
func floorPx(v fixed.Int26_6) int {
	return int(v >> 6)
}
