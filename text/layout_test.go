package text

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/bitglyph/bitglyph"
)

// fakeRasterizer serves canned glyphs and kerning pairs.
type fakeRasterizer struct {
	glyphs map[rune]RawGlyph
	kerns  map[[2]rune]fixed.Int26_6
}

func (f *fakeRasterizer) LoadGlyph(r rune) (RawGlyph, error) {
	g, ok := f.glyphs[r]
	if !ok {
		return RawGlyph{}, fmt.Errorf("%w: %q", ErrGlyphUnavailable, r)
	}
	return g, nil
}

func (f *fakeRasterizer) Kern(prev, r rune) fixed.Int26_6 {
	return f.kerns[[2]rune{prev, r}]
}

// rawFromRows builds a RawGlyph from '#' pattern rows.
func rawFromRows(t *testing.T, rows []string, top, advance int) RawGlyph {
	t.Helper()
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	pixels := make([]bool, len(rows)*width)
	for y, row := range rows {
		for x, ch := range row {
			pixels[y*width+x] = ch == '#'
		}
	}
	buf, pitch, err := bitglyph.PackMono(pixels, width, len(rows))
	if err != nil {
		t.Fatal(err)
	}
	return RawGlyph{
		Buffer:  buf,
		Width:   width,
		Rows:    len(rows),
		Pitch:   pitch,
		Top:     top,
		Advance: fixed.Int26_6(advance << 6),
	}
}

func TestMeasure_Empty(t *testing.T) {
	r := NewRenderer(&fakeRasterizer{})
	dims, err := r.Measure("")
	if err != nil {
		t.Fatalf("Measure() = %v", err)
	}
	if dims != (Dimensions{}) {
		t.Errorf("Measure(\"\") = %+v, want zero", dims)
	}
}

func TestMeasure_SingleChar(t *testing.T) {
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'A': rawFromRows(t, []string{"###", "#.#", "#.#"}, 3, 5),
	}}
	r := NewRenderer(ras)

	dims, err := r.Measure("A")
	if err != nil {
		t.Fatalf("Measure() = %v", err)
	}

	g, err := NewGlyph(ras.glyphs['A'])
	if err != nil {
		t.Fatal(err)
	}
	if dims.Width != max(g.Advance, g.Width()) {
		t.Errorf("Width = %d, want %d", dims.Width, max(g.Advance, g.Width()))
	}
	if dims.Height != g.Ascent+g.Descent {
		t.Errorf("Height = %d, want %d", dims.Height, g.Ascent+g.Descent)
	}
	if dims.Baseline != g.Descent {
		t.Errorf("Baseline = %d, want %d", dims.Baseline, g.Descent)
	}
}

func TestMeasure_OverhangWiderThanAdvance(t *testing.T) {
	// A glyph whose pixels spill past its pen advance must contribute its
	// full bitmap width, or the right edge would clip.
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'f': rawFromRows(t, []string{"####"}, 1, 2),
	}}
	r := NewRenderer(ras)

	dims, err := r.Measure("f")
	if err != nil {
		t.Fatalf("Measure() = %v", err)
	}
	if dims.Width != 4 {
		t.Errorf("Width = %d, want 4 (bitmap wider than advance)", dims.Width)
	}
}

func TestMeasure_MixedAscentDescent(t *testing.T) {
	// 'b' reaches 5 above the baseline, 'p' hangs 3 below it.
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'b': rawFromRows(t, []string{"#", "#", "#", "#", "#"}, 5, 2),
		'p': rawFromRows(t, []string{"#", "#", "#", "#", "#"}, 2, 2),
	}}
	r := NewRenderer(ras)

	dims, err := r.Measure("bp")
	if err != nil {
		t.Fatalf("Measure() = %v", err)
	}
	if dims.Height != 8 {
		t.Errorf("Height = %d, want 8 (ascent 5 + descent 3)", dims.Height)
	}
	if dims.Baseline != 3 {
		t.Errorf("Baseline = %d, want 3", dims.Baseline)
	}
}

func TestRender_KerningShiftsPen(t *testing.T) {
	// B starts at x = A.advance + kern = 10 - 2 = 8, not 10.
	ras := &fakeRasterizer{
		glyphs: map[rune]RawGlyph{
			'A': rawFromRows(t, []string{"#"}, 1, 10),
			'B': rawFromRows(t, []string{"#"}, 1, 1),
		},
		kerns: map[[2]rune]fixed.Int26_6{
			{'A', 'B'}: -2 << 6,
		},
	}
	r := NewRenderer(ras)

	bm, err := r.Render("AB")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	// Width: max(10, 1) for A, then max(1-2, 1-2) = -1 for B.
	if bm.Width() != 9 || bm.Height() != 1 {
		t.Fatalf("canvas = %dx%d, want 9x1", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) {
		t.Error("A's pixel missing at x=0")
	}
	if !bm.Get(8, 0) {
		t.Error("B's pixel missing at x=8 (kerned position)")
	}
	if bm.Get(10, 0) {
		t.Error("B's pixel found at unkerned x=10")
	}
	count := 0
	for _, on := range bm.Pixels() {
		if on {
			count++
		}
	}
	if count != 2 {
		t.Errorf("set pixel count = %d, want 2", count)
	}
}

func TestRender_NoKerningForFirstChar(t *testing.T) {
	// A kerning entry keyed on the zero rune must not shift the first glyph.
	ras := &fakeRasterizer{
		glyphs: map[rune]RawGlyph{
			'A': rawFromRows(t, []string{"#"}, 1, 3),
		},
		kerns: map[[2]rune]fixed.Int26_6{
			{0, 'A'}: -2 << 6,
		},
	}
	r := NewRenderer(ras)

	bm, err := r.Render("A")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if !bm.Get(0, 0) {
		t.Error("first glyph not at x=0")
	}
}

func TestRender_BaselineAlignment(t *testing.T) {
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'b': rawFromRows(t, []string{"#", "#", "#", "#", "#"}, 5, 1),
		'p': rawFromRows(t, []string{"#", "#", "#", "#", "#"}, 2, 1),
	}}
	r := NewRenderer(ras)

	bm, err := r.Render("bp")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if bm.Width() != 2 || bm.Height() != 8 {
		t.Fatalf("canvas = %dx%d, want 2x8", bm.Width(), bm.Height())
	}

	// b occupies rows 0-4 (top-aligned to the tallest ascent), p rows 3-7.
	for y := 0; y < 8; y++ {
		wantB := y < 5
		if got := bm.Get(0, y); got != wantB {
			t.Errorf("b column, row %d = %v, want %v", y, got, wantB)
		}
		wantP := y >= 3
		if got := bm.Get(1, y); got != wantP {
			t.Errorf("p column, row %d = %v, want %v", y, got, wantP)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	ras := &fakeRasterizer{
		glyphs: map[rune]RawGlyph{
			'h': rawFromRows(t, []string{"#.", "##", "#."}, 3, 2),
			'i': rawFromRows(t, []string{"#", "#", "#"}, 3, 1),
		},
		kerns: map[[2]rune]fixed.Int26_6{
			{'h', 'i'}: -1 << 6,
		},
	}
	r := NewRenderer(ras)

	first, err := r.Render("hi")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	second, err := r.Render("hi")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if first.Width() != second.Width() || first.Height() != second.Height() {
		t.Fatal("renders differ in size")
	}
	for i, on := range first.Pixels() {
		if on != second.Pixels()[i] {
			t.Fatalf("renders differ at pixel %d", i)
		}
	}
}

func TestRenderSized_ClipsSilently(t *testing.T) {
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'X': rawFromRows(t, []string{"###", "###", "###"}, 3, 3),
	}}
	r := NewRenderer(ras)

	// A canvas far too small for the glyph: no error, no panic.
	bm, err := r.RenderSized("XXX", Dimensions{Width: 2, Height: 1, Baseline: 0})
	if err != nil {
		t.Fatalf("RenderSized() = %v", err)
	}
	if bm.Width() != 2 || bm.Height() != 1 {
		t.Errorf("canvas = %dx%d, want 2x1", bm.Width(), bm.Height())
	}
}

func TestRenderSized_NegativeDimensions(t *testing.T) {
	r := NewRenderer(&fakeRasterizer{})
	if _, err := r.RenderSized("", Dimensions{Width: -1}); !errors.Is(err, bitglyph.ErrInvalidDimensions) {
		t.Errorf("RenderSized() = %v, want ErrInvalidDimensions", err)
	}
}

func TestRender_GlyphUnavailable(t *testing.T) {
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'A': rawFromRows(t, []string{"#"}, 1, 1),
	}}
	r := NewRenderer(ras)

	if _, err := r.Measure("AZ"); !errors.Is(err, ErrGlyphUnavailable) {
		t.Errorf("Measure() = %v, want ErrGlyphUnavailable", err)
	}
	if _, err := r.Render("AZ"); !errors.Is(err, ErrGlyphUnavailable) {
		t.Errorf("Render() = %v, want ErrGlyphUnavailable", err)
	}
}

// errorRasterizer fails with an arbitrary error on every load.
type errorRasterizer struct{}

func (errorRasterizer) LoadGlyph(rune) (RawGlyph, error) {
	return RawGlyph{}, errors.New("backend exploded")
}

func (errorRasterizer) Kern(_, _ rune) fixed.Int26_6 { return 0 }

func TestRender_WrapsRasterizerErrors(t *testing.T) {
	r := NewRenderer(errorRasterizer{})
	_, err := r.Render("A")
	if !errors.Is(err, ErrGlyphUnavailable) {
		t.Errorf("Render() = %v, want error wrapping ErrGlyphUnavailable", err)
	}
}

// staticKerner returns the same kerning for every pair.
type staticKerner struct {
	kern fixed.Int26_6
}

func (k staticKerner) Kern(_, _ rune) fixed.Int26_6 { return k.kern }

func TestWithKerning_OverridesRasterizer(t *testing.T) {
	ras := &fakeRasterizer{
		glyphs: map[rune]RawGlyph{
			'A': rawFromRows(t, []string{"#"}, 1, 4),
			'B': rawFromRows(t, []string{"#"}, 1, 1),
		},
		kerns: map[[2]rune]fixed.Int26_6{
			{'A', 'B'}: -3 << 6, // would collapse the glyphs if used
		},
	}
	r := NewRenderer(ras, WithKerning(staticKerner{kern: -1 << 6}))

	bm, err := r.Render("AB")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	// B lands at x = 4 - 1 = 3, not 4 - 3 = 1.
	if !bm.Get(3, 0) {
		t.Error("B not at the override-kerned position x=3")
	}
	if bm.Get(1, 0) {
		t.Error("B at the rasterizer-kerned position x=1; override ignored")
	}
}

func TestWithKerning_NilKeepsRasterizer(t *testing.T) {
	ras := &fakeRasterizer{
		glyphs: map[rune]RawGlyph{
			'A': rawFromRows(t, []string{"#"}, 1, 4),
			'B': rawFromRows(t, []string{"#"}, 1, 1),
		},
		kerns: map[[2]rune]fixed.Int26_6{
			{'A', 'B'}: -1 << 6,
		},
	}
	r := NewRenderer(ras, WithKerning(nil))

	bm, err := r.Render("AB")
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if !bm.Get(3, 0) {
		t.Error("rasterizer kerning not applied when WithKerning(nil)")
	}
}

func TestRenderGlyph(t *testing.T) {
	ras := &fakeRasterizer{glyphs: map[rune]RawGlyph{
		'P': rawFromRows(t, []string{"##", "##"}, 2, 3),
	}}
	r := NewRenderer(ras)

	bm, err := r.RenderGlyph('P')
	if err != nil {
		t.Fatalf("RenderGlyph() = %v", err)
	}
	if bm.Width() != 2 || bm.Height() != 2 {
		t.Errorf("bitmap = %dx%d, want 2x2", bm.Width(), bm.Height())
	}
}
