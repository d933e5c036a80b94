package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphUnavailable is returned when the rasterizer has no glyph for
	// a requested character. No fallback glyph is substituted; that policy
	// decision belongs to the caller.
	ErrGlyphUnavailable = errors.New("text: glyph unavailable")
)
