package bitglyph

// UnpackMono unpacks a 1-bit-per-pixel packed buffer into a flat boolean
// pixel slice of exactly rows*width entries, row-major.
//
// The buffer layout follows the FreeType monochrome convention: each row
// occupies pitch bytes, bits are MSB-first, and the trailing pitch*8-width
// bits of each row are padding. Reading row bytes as one big-endian integer
// and testing bit pitch*8-1-i is equivalent to the byte-indexed test used
// here; either way the padding bits are never indexed.
//
// Returns ErrMalformedBitmap if len(buf) != rows*pitch or pitch*8 < width.
// A zero width or zero rows yields an empty slice, not an error.
func UnpackMono(buf []byte, width, rows, pitch int) ([]bool, error) {
	if width < 0 || rows < 0 || pitch < 0 {
		return nil, ErrMalformedBitmap
	}
	if len(buf) != rows*pitch || pitch*8 < width {
		return nil, ErrMalformedBitmap
	}

	pixels := make([]bool, rows*width)
	for y := 0; y < rows; y++ {
		row := buf[y*pitch : (y+1)*pitch]
		out := pixels[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			out[x] = row[x>>3]&(0x80>>(x&7)) != 0
		}
	}
	return pixels, nil
}

// PackMono packs a flat boolean pixel slice into the 1-bit-per-pixel layout
// consumed by UnpackMono, using the minimal byte pitch ceil(width/8).
// It is the inverse of UnpackMono up to padding bits, which are left zero.
//
// Returns ErrMalformedBitmap if len(pixels) != rows*width.
func PackMono(pixels []bool, width, rows int) ([]byte, int, error) {
	if width < 0 || rows < 0 || len(pixels) != rows*width {
		return nil, 0, ErrMalformedBitmap
	}

	pitch := (width + 7) / 8
	buf := make([]byte, rows*pitch)
	for y := 0; y < rows; y++ {
		row := pixels[y*width : (y+1)*width]
		for x, on := range row {
			if on {
				buf[y*pitch+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return buf, pitch, nil
}
