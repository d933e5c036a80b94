package text

import (
	"errors"
	"fmt"

	"github.com/bitglyph/bitglyph"
)

// Dimensions describes the raster size of a laid-out string.
type Dimensions struct {
	// Width is the horizontal extent in pixels. Each character contributes
	// the larger of its pen advance and its bitmap width (plus kerning), so
	// overhanging glyphs are never clipped on the right.
	Width int

	// Height is the vertical extent in pixels: the tallest ascent plus the
	// deepest descent across the string.
	Height int

	// Baseline is the distance from the bottom edge of the canvas up to
	// the baseline, equal to the deepest descent.
	Baseline int
}

// Renderer lays out and renders strings through a Rasterizer. Layout is a
// two-pass affair: a measure pass accumulates the canvas dimensions, then a
// render pass composites each glyph at its kerned, baseline-aligned offset.
//
// Renderer is not safe for concurrent use when its rasterizer is not; the
// built-in Face is single-slot stateful. Each call owns its own layout
// state, so sequential use never leaks state between strings.
type Renderer struct {
	ras  Rasterizer
	kern Kerner
}

// NewRenderer creates a renderer over the given rasterizer. By default the
// rasterizer also supplies kerning; see WithKerning.
func NewRenderer(ras Rasterizer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		ras:  ras,
		kern: ras,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Measure returns the dimensions of the area the string would occupy when
// rendered. The empty string measures as the zero Dimensions.
func (r *Renderer) Measure(s string) (Dimensions, error) {
	var (
		width      int
		maxAscent  int
		maxDescent int
		prev       rune
		hasPrev    bool
	)

	for _, c := range s {
		g, err := r.glyph(c)
		if err != nil {
			return Dimensions{}, err
		}

		var kx int
		if hasPrev {
			kx = floorPx(r.kern.Kern(prev, c))
		}

		// A glyph's pixels can spill past its pen advance (italic
		// overhangs); the wider of the two keeps it on canvas.
		width += max(g.Advance+kx, g.Width()+kx)
		maxAscent = max(maxAscent, g.Ascent)
		maxDescent = max(maxDescent, g.Descent)

		prev, hasPrev = c, true
	}

	return Dimensions{
		Width:    width,
		Height:   maxAscent + maxDescent,
		Baseline: maxDescent,
	}, nil
}

// Render measures the string, allocates a canvas of exactly that size, and
// renders onto it. Rendering the same string twice with the same rasterizer
// state produces bit-identical bitmaps.
func (r *Renderer) Render(s string) (*bitglyph.Bitmap, error) {
	dims, err := r.Measure(s)
	if err != nil {
		return nil, err
	}
	bitglyph.Logger().Debug("text: measured string",
		"len", len(s), "width", dims.Width, "height", dims.Height, "baseline", dims.Baseline)
	return r.RenderSized(s, dims)
}

// RenderSized renders the string onto a canvas of the caller-supplied
// dimensions. Glyphs that fall outside the canvas are clipped silently;
// the canvas size is authoritative.
func (r *Renderer) RenderSized(s string, dims Dimensions) (*bitglyph.Bitmap, error) {
	canvas, err := bitglyph.New(dims.Width, dims.Height)
	if err != nil {
		return nil, err
	}

	var (
		x       int
		prev    rune
		hasPrev bool
	)

	for _, c := range s {
		g, err := r.glyph(c)
		if err != nil {
			return nil, err
		}

		if hasPrev {
			x += floorPx(r.kern.Kern(prev, c))
		}

		// Align the glyph's baseline with the canvas baseline.
		y := dims.Height - g.Ascent - dims.Baseline
		canvas.Composite(g.Bitmap, x, y)
		x += g.Advance

		prev, hasPrev = c, true
	}

	return canvas, nil
}

// RenderGlyph renders a single character onto its own tightly sized bitmap.
func (r *Renderer) RenderGlyph(c rune) (*bitglyph.Bitmap, error) {
	g, err := r.glyph(c)
	if err != nil {
		return nil, err
	}
	return g.Bitmap, nil
}

// glyph requests one character from the rasterizer and unpacks it. The
// glyph is re-requested on every pass; the rasterizer's single glyph slot
// rules out holding results across calls, and Glyph construction copies
// all pixel data out immediately.
func (r *Renderer) glyph(c rune) (*Glyph, error) {
	raw, err := r.ras.LoadGlyph(c)
	if err != nil {
		if errors.Is(err, ErrGlyphUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrGlyphUnavailable, c, err)
	}
	return NewGlyph(raw)
}
