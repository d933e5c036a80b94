// Package bitglyph provides monochrome bitmap primitives for glyph
// compositing.
//
// # Overview
//
// bitglyph is a small pure Go library for rendering text into 1-bit raster
// images. The root package holds the pixel-level building blocks: a boolean
// Bitmap with OR-compositing, and pack/unpack routines for the padded
// 1-bit-per-pixel row layout that font rasterizers emit. The text
// subpackage layers glyph metrics and a two-pass layout engine on top.
//
// # Quick Start
//
//	import (
//	    "github.com/bitglyph/bitglyph/text"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	source, _ := text.NewFontSource(goregular.TTF)
//	face, _ := source.Face(40)
//	r := text.NewRenderer(face)
//
//	bm, _ := r.Render("Hello")
//	fmt.Println(bm)          // terminal block rendering
//	bm.SavePNG("hello.png")  // ink on paper
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Compositing Model
//
// Pixels are booleans and compositing is logical OR: once a pixel is set it
// stays set, and source pixels falling outside the destination are clipped
// silently. There is no anti-aliasing, no coverage blending and no
// sub-pixel positioning.
package bitglyph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
