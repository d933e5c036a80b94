package text

import "golang.org/x/image/font"

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting font.Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: font.HintingFull,
	}
}

// WithHinting sets the glyph hinting mode for the face.
// The default is font.HintingFull, which gives the crispest monochrome
// output; font.HintingNone preserves the outline shapes more faithfully.
func WithHinting(h font.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// RendererOption configures Renderer creation.
type RendererOption func(*Renderer)

// WithKerning substitutes k as the renderer's kerning source in place of
// the rasterizer's own kerning. Pass nil to keep the rasterizer's kerning.
func WithKerning(k Kerner) RendererOption {
	return func(r *Renderer) {
		if k != nil {
			r.kern = k
		}
	}
}
