// Package text provides glyph metrics and text layout for bitglyph.
//
// The rendering pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size, producing packed
//     monochrome glyph bitmaps and kerning values
//   - Renderer: Two-pass layout engine (measure, then render) compositing
//     glyphs onto a bitglyph.Bitmap
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create face at specific pixel size (lightweight)
//	face, err := source.Face(24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	// Render
//	r := text.NewRenderer(face)
//	bm, err := r.Render("Hello!")
//
// # Pluggable Rasterizer Backend
//
// The glyph source is abstracted through the Rasterizer interface, which
// speaks the packed 1-bit-per-pixel format of FreeType-style engines. Face
// is the built-in implementation, backed by golang.org/x/image/font. Any
// engine that can deliver packed monochrome bitmaps with baseline and
// advance metrics can stand in for it.
//
// Kerning is separately pluggable through the Kerner interface. The default
// is the rasterizer's own kerning; WithKerning swaps in an alternative such
// as GoTextKerner, which applies HarfBuzz shaping via go-text/typesetting
// to fonts whose kerning lives in GPOS.
package text
