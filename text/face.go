package text

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/bitglyph/bitglyph"
)

// monoThreshold is the coverage cutoff for monochrome output: a pixel is
// inked when it is at least half covered, the same cutoff FreeType applies
// for its mono render target.
const monoThreshold = 0x80

// Face is a font face at a specific pixel size. It implements Rasterizer by
// rendering glyphs through golang.org/x/image/font and thresholding the
// coverage mask into the packed monochrome row layout.
//
// Face is not safe for concurrent use: the underlying font machinery keeps
// a single scratch glyph slot, and each LoadGlyph call overwrites it.
type Face struct {
	source *FontSource
	xface  font.Face
	size   float64

	// sbuf is the scratch state for glyph index lookups; sharing it across
	// calls is part of what makes Face single-slot stateful.
	sbuf sfnt.Buffer
}

var _ Rasterizer = (*Face)(nil)

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the pixel size of this face.
func (f *Face) Size() float64 {
	return f.size
}

// LoadGlyph implements Rasterizer. It renders the glyph for r at the
// origin, thresholds the coverage mask at half intensity, and packs the
// result MSB-first with the minimal byte pitch.
//
// Returns an error wrapping ErrGlyphUnavailable when the font maps r to no
// glyph. The missing-glyph box (.notdef) is never substituted.
func (f *Face) LoadGlyph(r rune) (RawGlyph, error) {
	if !f.hasGlyph(r) {
		return RawGlyph{}, fmt.Errorf("%w: %q", ErrGlyphUnavailable, r)
	}

	// With the dot at the origin, dr.Min.Y is the negated distance from
	// the baseline up to the glyph's top row.
	dr, maskImg, maskp, advance, ok := f.xface.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return RawGlyph{}, fmt.Errorf("%w: %q", ErrGlyphUnavailable, r)
	}

	width, rows := dr.Dx(), dr.Dy()
	pixels := make([]bool, rows*width)

	if mask, isAlpha := maskImg.(*image.Alpha); isAlpha {
		for y := 0; y < rows; y++ {
			i := mask.PixOffset(maskp.X, maskp.Y+y)
			row := mask.Pix[i : i+width]
			for x, a := range row {
				pixels[y*width+x] = a >= monoThreshold
			}
		}
	} else {
		for y := 0; y < rows; y++ {
			for x := 0; x < width; x++ {
				a := color.AlphaModel.Convert(maskImg.At(maskp.X+x, maskp.Y+y)).(color.Alpha).A
				pixels[y*width+x] = a >= monoThreshold
			}
		}
	}

	buf, pitch, err := bitglyph.PackMono(pixels, width, rows)
	if err != nil {
		return RawGlyph{}, err
	}

	return RawGlyph{
		Buffer:  buf,
		Width:   width,
		Rows:    rows,
		Pitch:   pitch,
		Top:     -dr.Min.Y,
		Advance: advance,
	}, nil
}

// Kern implements Rasterizer using the font's legacy kern table.
// Fonts that carry their kerning in GPOS report 0 here; pair a Renderer
// with GoTextKerner for those.
func (f *Face) Kern(prev, r rune) fixed.Int26_6 {
	return f.xface.Kern(prev, r)
}

// Close releases the resources held by the face.
func (f *Face) Close() error {
	return f.xface.Close()
}

// hasGlyph reports whether the font maps r to a real glyph rather than
// the missing-glyph index 0.
func (f *Face) hasGlyph(r rune) bool {
	idx, err := f.source.parsed.GlyphIndex(&f.sbuf, r)
	return err == nil && idx != 0
}
