package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextKerner provides HarfBuzz-level pair kerning using
// go-text/typesetting. The built-in Face only reads the legacy kern table;
// many modern fonts carry their kerning in GPOS, which only a real shaper
// applies. GoTextKerner recovers the pairwise adjustment by shaping the
// pair and subtracting the first glyph's solo advance.
//
// GoTextKerner is an opt-in replacement for the rasterizer's kerning:
//
//	k, err := text.NewGoTextKerner(source, 40)
//	r := text.NewRenderer(face, text.WithKerning(k))
//
// GoTextKerner is safe for concurrent use. The parsed font.Font is
// read-only and thread-safe; font.Face instances are NOT safe for
// concurrent use, so each Kern call creates a lightweight one. The
// HarfbuzzShaper instances are pooled since they also are not
// concurrent-safe.
type GoTextKerner struct {
	// gtFont is the parsed go-text font, read-only and safe to share.
	gtFont *font.Font

	// size is the pixel size in 26.6 fixed point.
	size fixed.Int26_6

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state (buffer) and is NOT safe for concurrent use,
	// but reusing instances across calls avoids reallocating its buffers.
	shaperPool sync.Pool
}

var _ Kerner = (*GoTextKerner)(nil)

// NewGoTextKerner creates a kerner for the given font source at the given
// pixel size. The size should match the Face the kerner is paired with;
// kerning values scale with the size.
func NewGoTextKerner(source *FontSource, sizePx float64) (*GoTextKerner, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	gtFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for kerning: %w", err)
	}

	return &GoTextKerner{
		gtFont: gtFace.Font,
		size:   fixed.Int26_6(sizePx * 64),
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Kern implements Kerner. It returns the horizontal adjustment HarfBuzz
// applies between prev and r, in 26.6 fixed point: the advance of the
// shaped pair minus the advances of the two characters shaped alone.
func (k *GoTextKerner) Kern(prev, r rune) fixed.Int26_6 {
	pair := k.shape([]rune{prev, r})
	if len(pair.Glyphs) != 2 {
		// Shaping substituted a ligature or decomposed the pair; there is
		// no pairwise adjustment to report.
		return 0
	}

	return pair.Advance - k.shape([]rune{prev}).Advance - k.shape([]rune{r}).Advance
}

// shape runs HarfBuzz shaping over the runes as a single LTR run.
func (k *GoTextKerner) shape(runes []rune) shaping.Output {
	// font.Face is NOT safe for concurrent use, so each call gets its own
	// instance. font.NewFace is cheap — it wraps the thread-safe *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(k.gtFont),
		Size:      k.size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := k.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	k.shaperPool.Put(hb)

	return output
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; kerning pairs are
// single-script in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
