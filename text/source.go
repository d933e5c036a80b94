package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is read-only after creation and safe for concurrent use;
// the faces it creates are not.
type FontSource struct {
	// Font data
	data   []byte
	parsed *sfnt.Font
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &FontSource{
		data:   dataCopy,
		parsed: parsed,
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Face creates a Face at the specified pixel size.
// Face instances are lightweight; create one per size you need.
func (s *FontSource) Face(sizePx float64, opts ...FaceOption) (*Face, error) {
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	xface, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // at 72 DPI one point is one pixel
		Hinting: config.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		source: s,
		xface:  xface,
		size:   sizePx,
	}, nil
}
