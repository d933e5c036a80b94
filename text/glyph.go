package text

import (
	"github.com/bitglyph/bitglyph"
)

// Glyph represents a single rasterized character: its pixel bitmap plus the
// placement metrics the layout engine needs. A Glyph owns its bitmap; it
// shares no storage with the rasterizer or with any destination canvas.
//
// Glyph is immutable once constructed.
type Glyph struct {
	// Bitmap is the glyph's own pixels.
	Bitmap *bitglyph.Bitmap

	// Top is the vertical distance from the baseline to the top row of the
	// bitmap, as reported by the rasterizer.
	Top int

	// Ascent is how far the glyph extends above the baseline.
	Ascent int

	// Descent is how far the glyph extends below the baseline.
	Descent int

	// Advance is the horizontal pen advance after drawing this glyph, in
	// whole pixels. It is independent of the bitmap width.
	Advance int
}

// NewGlyph constructs a Glyph from a rasterizer's RawGlyph, unpacking the
// packed bitmap and deriving ascent and descent from the top offset.
//
// Descent is max(0, rows-top) and ascent is max(0, max(top, rows)-descent).
// For top values outside [0, rows] the clamping gives results that look
// surprising in isolation; vertical placement arithmetic depends on them,
// so they are kept as is.
//
// The raw buffer is fully copied out; the returned Glyph stays valid after
// the rasterizer's glyph slot is overwritten.
func NewGlyph(raw RawGlyph) (*Glyph, error) {
	pixels, err := bitglyph.UnpackMono(raw.Buffer, raw.Width, raw.Rows, raw.Pitch)
	if err != nil {
		return nil, err
	}
	bm, err := bitglyph.FromPixels(raw.Width, raw.Rows, pixels)
	if err != nil {
		return nil, err
	}

	descent := max(0, raw.Rows-raw.Top)
	ascent := max(0, max(raw.Top, raw.Rows)-descent)

	return &Glyph{
		Bitmap:  bm,
		Top:     raw.Top,
		Ascent:  ascent,
		Descent: descent,
		Advance: floorPx(raw.Advance),
	}, nil
}

// Width returns the width of the glyph's bitmap in pixels.
func (g *Glyph) Width() int {
	return g.Bitmap.Width()
}

// Height returns the height of the glyph's bitmap in pixels.
func (g *Glyph) Height() int {
	return g.Bitmap.Height()
}
