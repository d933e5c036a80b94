package bitglyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
)

// Bitmap represents a rectangular monochrome pixel grid.
// A pixel is either set (ink) or unset (paper); there are no
// intermediate coverage values.
type Bitmap struct {
	width  int
	height int
	pixels []bool // row-major, pixels[y*width+x]
}

// New creates a new bitmap with the given dimensions, all pixels unset.
// Returns ErrInvalidDimensions if width or height is negative.
func New(width, height int) (*Bitmap, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	return &Bitmap{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}, nil
}

// FromPixels creates a bitmap that adopts the given row-major pixel slice.
// The slice is not copied; callers that need independence should pass a copy.
// Returns ErrInvalidDimensions if the dimensions are negative or the slice
// length is not exactly width*height.
func FromPixels(width, height int, pixels []bool) (*Bitmap, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return nil, ErrInvalidDimensions
	}
	return &Bitmap{
		width:  width,
		height: height,
		pixels: pixels,
	}, nil
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Pixels returns the raw row-major pixel data.
func (b *Bitmap) Pixels() []bool {
	return b.pixels
}

// Get reports whether the pixel at (x, y) is set.
// Coordinates outside the bitmap read as unset.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.pixels[y*b.width+x]
}

// Set sets or clears a single pixel.
// Coordinates outside the bitmap are silently ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = on
}

// Composite draws src onto b with its top-left corner at (x, y), combining
// pixels with logical OR: a destination pixel that is already set stays set.
// Source pixels that fall outside the destination are silently clipped, so
// any offset is valid, including offsets that place src entirely off-canvas.
// Each source row is clipped independently; the destination never grows.
func (b *Bitmap) Composite(src *Bitmap, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= b.height {
			continue
		}
		srcRow := src.pixels[sy*src.width : (sy+1)*src.width]
		dstRow := b.pixels[dy*b.width : (dy+1)*b.width]
		for sx, on := range srcRow {
			dx := x + sx
			if dx < 0 || dx >= b.width {
				continue
			}
			if on {
				dstRow[dx] = true
			}
		}
	}
}

// String returns a terminal rendering of the bitmap: two block characters
// per set pixel, two spaces per unset pixel, rows separated by newlines.
// Two symbols per pixel roughly squares up the cell aspect ratio of most
// terminals.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width*2 + 1))
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if b.pixels[y*b.width+x] {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// ToImage converts the bitmap to an image.Gray: set pixels become black
// ink on a white background.
func (b *Bitmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for i, on := range b.pixels {
		if on {
			img.Pix[i] = 0x00
		} else {
			img.Pix[i] = 0xFF
		}
	}
	return img
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Get(x, y) {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xFF}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}
